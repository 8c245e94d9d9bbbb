package middleware

import (
	"time"

	"carvalue/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records latency per matched route. It must run inside the error
// handler so the final status is known.
func Metrics(recorder *metrics.Recorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			recorder.ObserveHTTP(c.Request().Method, route, c.Response().Status, time.Since(start))

			return nil
		}
	}
}
