package http

import (
	"github.com/amankumarsingh77/reelfetch/internal/stream"
	"github.com/labstack/echo/v4"
)

func MapStreamRoutes(titlesGroup, streamGroup *echo.Group, h stream.Handler) {
	titlesGroup.GET("/:id/stream", h.ResolveStream())
	streamGroup.GET("/:jobId", h.ServeStream())
	streamGroup.HEAD("/:jobId", h.ServeStream())
}
