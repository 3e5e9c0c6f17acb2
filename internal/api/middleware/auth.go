package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Auth validates the bearer JWT and injects the identity claims into the
// request context. A missing header is 401; a present-but-invalid token is
// 403, and malformed, badly signed, and expired tokens are deliberately
// indistinguishable to the caller.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization token is missing")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization token is missing")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired authorization token")
			}

			c.Set("user_id", claims["sub"])
			c.Set("username", claims["username"])
			c.Set("role", claims["role"])

			return next(c)
		}
	}
}
