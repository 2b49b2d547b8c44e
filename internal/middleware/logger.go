package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestLoggerMiddleware writes one access line per request through the app logger.
func (mw *MiddlewareManager) RequestLoggerMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		},
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				mw.logger.Errorf("RequestID: %s, Method: %s, URI: %s, Status: %d, Latency: %s, IP: %s, Error: %v",
					v.RequestID, v.Method, v.URI, v.Status, v.Latency, v.RemoteIP, v.Error)
				return nil
			}
			mw.logger.Infof("RequestID: %s, Method: %s, URI: %s, Status: %d, Latency: %s, IP: %s",
				v.RequestID, v.Method, v.URI, v.Status, v.Latency, v.RemoteIP)
			return nil
		},
	})
}
