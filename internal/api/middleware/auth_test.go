package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func userClaims(exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":      "u1",
		"username": "alice",
		"role":     "admin",
		"iat":      time.Now().Unix(),
		"exp":      exp.Unix(),
	}
}

func invokeAuth(t *testing.T, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/people", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuth_ValidToken(t *testing.T) {
	token := signToken(t, testSecret, userClaims(time.Now().Add(time.Hour)))

	c, err := invokeAuth(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if got, _ := c.Get("user_id").(string); got != "u1" {
		t.Fatalf("expected user_id u1, got %q", got)
	}
	if got, _ := c.Get("username").(string); got != "alice" {
		t.Fatalf("expected username alice, got %q", got)
	}
	if got, _ := c.Get("role").(string); got != "admin" {
		t.Fatalf("expected role admin, got %q", got)
	}
}

func TestAuth_MissingToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"no scheme", "just-a-token"},
		{"empty bearer", "Bearer "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := invokeAuth(t, tc.header)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", httpErr.Code)
			}
		})
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	expired := signToken(t, testSecret, userClaims(time.Now().Add(-time.Hour)))
	wrongKey := signToken(t, "other-secret", userClaims(time.Now().Add(time.Hour)))
	tampered := signToken(t, testSecret, userClaims(time.Now().Add(time.Hour))) + "x"

	cases := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong signing key", wrongKey},
		{"tampered signature", tampered},
		{"garbage", "not.a.jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := invokeAuth(t, "Bearer "+tc.token)
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

func TestAuth_RejectsNonHMACAlgorithm(t *testing.T) {
	// alg=none with an empty signature must not slip past the HS256 check.
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, userClaims(time.Now().Add(time.Hour))).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, invokeErr := invokeAuth(t, "Bearer "+unsigned)
	httpErr, ok := invokeErr.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", invokeErr)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", httpErr.Code)
	}
}
