package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAuth redirects anonymous requests to the login page. It inspects
// only the session snapshot already in the context; no store access.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if SessionFromContext(c) == nil {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

// RequireAdmin terminates the request with a fixed forbidden response unless
// the session snapshot carries the admin flag. The flag is the one captured
// at login: a promotion or demotion takes effect at next login.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := SessionFromContext(c)
		if sess == nil || !sess.User.IsAdmin {
			return c.String(http.StatusForbidden, "access denied")
		}
		return next(c)
	}
}
