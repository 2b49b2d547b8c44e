package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestTimeoutMiddleware bounds each request context by Server.CtxDefaultTimeout.
// Byte-serving routes are exempt, their lifetime is the client's download.
func (mw *MiddlewareManager) RequestTimeoutMiddleware() echo.MiddlewareFunc {
	timeout := mw.cfg.Server.CtxDefaultTimeout
	if timeout <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
		Skipper: func(c echo.Context) bool {
			return strings.HasSuffix(c.Path(), "/stream/:jobId")
		},
	})
}
