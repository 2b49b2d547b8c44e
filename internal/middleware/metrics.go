package middleware

import (
	"strconv"
	"time"

	"github.com/amankumarsingh77/reelfetch/pkg/metrics"
	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency by route template.
func (mw *MiddlewareManager) MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Response().Status)
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request().Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
		return nil
	}
}
