package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces role-based access control over the role claim the Auth
// middleware attached. It must always be routed after Auth: a request that
// never authenticated carries no role and is refused here.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}
