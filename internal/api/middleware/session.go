package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
	"github.com/hotel-louvain/booking-system/internal/session"
)

// sessionContextKey is where LoadSession stores the resolved session.
const sessionContextKey = "session"

// LoadSession resolves the session cookie on every request and, when valid,
// injects the session into the request context. Requests without a usable
// session simply proceed anonymously; the guards decide what that means.
func LoadSession(manager *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err == nil && cookie.Value != "" {
				if sess, err := manager.Resolve(c.Request().Context(), cookie.Value); err == nil {
					c.Set(sessionContextKey, sess)
				}
			}
			return next(c)
		}
	}
}

// SessionFromContext returns the session injected by LoadSession, or nil for
// anonymous requests.
func SessionFromContext(c echo.Context) *domain.Session {
	sess, _ := c.Get(sessionContextKey).(*domain.Session)
	return sess
}

// SetSession injects a session into the context. Exported for handler tests.
func SetSession(c echo.Context, sess *domain.Session) {
	c.Set(sessionContextKey, sess)
}
