package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func invokeRBAC(t *testing.T, role interface{}, allowed ...string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/status/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}

	handler := RBAC(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return handler(c)
}

func TestRBAC_AllowsListedRole(t *testing.T) {
	if err := invokeRBAC(t, "admin", "admin"); err != nil {
		t.Fatalf("expected admin to pass, got %v", err)
	}
}

func TestRBAC_RejectsOtherRoles(t *testing.T) {
	cases := []struct {
		name string
		role interface{}
	}{
		{"regular user", "user"},
		{"unknown role", "superuser"},
		{"no role set", nil},
		{"non-string role", 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := invokeRBAC(t, tc.role, "admin")
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", httpErr.Code)
			}
		})
	}
}
