package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hotel-louvain/booking-system/internal/infrastructure/db/redis"
)

// RateLimit throttles a route per client IP using the Redis fixed-window
// limiter. When Redis is unavailable the request is let through: losing the
// limiter must not take down login.
func RateLimit(limiter *redis.RateLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Path() + ":" + c.RealIP()

			allowed, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
				return next(c)
			}
			if !allowed {
				return c.String(http.StatusTooManyRequests, "too many requests, try again later")
			}
			return next(c)
		}
	}
}
