package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity claims injected by the Auth middleware.
// A missing user id or role means the middleware never ran on this route,
// which is a wiring bug surfaced as 401 rather than a nil-deref later.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	role, _ = c.Get("role").(string)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}
