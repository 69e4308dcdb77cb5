package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"taskflow.com/taskflow/internal/auth"
)

const bearerPrefix = "Bearer "

// Authenticate requires a signed bearer token and stores the caller on the
// request context.
func Authenticate(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			principal, err := auth.ParseToken(secret, strings.TrimSpace(header[len(bearerPrefix):]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token").SetInternal(err)
			}

			req := c.Request()
			c.SetRequest(req.WithContext(auth.WithPrincipal(req.Context(), principal)))
			return next(c)
		}
	}
}
