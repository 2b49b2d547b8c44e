package http

import (
	"github.com/amankumarsingh77/reelfetch/internal/titles"
	"github.com/labstack/echo/v4"
)

func MapTitlesRoutes(titlesGroup *echo.Group, h titles.Handler) {
	titlesGroup.GET("/:id", h.GetDetails())
}
