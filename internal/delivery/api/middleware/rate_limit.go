package middleware

import (
	"time"

	domainerrors "carvalue/internal/domain/errors"
	"carvalue/internal/errors"
	"carvalue/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimit rejects requests once the client IP exhausts its bucket.
// A nil limiter disables the check.
func RateLimit(limiter *ratelimit.MapLimiter, now func() time.Time) echo.MiddlewareFunc {
	if now == nil {
		now = time.Now
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP(), now()) {
				return errors.Wrapf(domainerrors.ErrRateLimited, "client %s", c.RealIP())
			}

			return next(c)
		}
	}
}
