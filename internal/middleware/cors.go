package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (mw *MiddlewareManager) CORSMiddleware() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  mw.origins,
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAuthorization, "Range"},
		ExposeHeaders: []string{echo.HeaderContentLength, "Content-Range", "Accept-Ranges", echo.HeaderXRequestID},
		MaxAge:        300,
	})
}
