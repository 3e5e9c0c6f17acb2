package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/casetrack/case-management/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/people", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"username length", domain.ErrUsernameLength, http.StatusBadRequest},
		{"short password", domain.ErrPasswordTooShort, http.StatusBadRequest},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"self role change", domain.ErrSelfRoleChange, http.StatusBadRequest},
		{"missing name", domain.ErrMissingName, http.StatusBadRequest},
		{"empty status", domain.ErrEmptyStatus, http.StatusBadRequest},
		{"file too large", domain.ErrFileTooLarge, http.StatusBadRequest},
		{"unsupported file type", domain.ErrUnsupportedFileType, http.StatusBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"person not found", domain.ErrPersonNotFound, http.StatusNotFound},
		{"document not found", domain.ErrDocumentNotFound, http.StatusNotFound},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if body.Error != tc.err.Error() {
				t.Fatalf("expected message %q, got %q", tc.err.Error(), body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, body := renderError(t, errors.New("pq: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body.Error)
	}
}

func TestHTTPErrorHandler_EchoErrors(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", code)
	}
	if body.Error != "short and stout" {
		t.Fatalf("unexpected message %q", body.Error)
	}
}
