package http

import (
	"github.com/amankumarsingh77/reelfetch/internal/releases"
	"github.com/labstack/echo/v4"
)

func MapReleasesRoutes(titlesGroup *echo.Group, h releases.Handler) {
	titlesGroup.GET("/:id/releases", h.ListReleases())
}
