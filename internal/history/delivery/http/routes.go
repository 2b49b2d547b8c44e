package http

import (
	"github.com/amankumarsingh77/reelfetch/internal/history"
	"github.com/labstack/echo/v4"
)

func MapHistoryRoutes(historyGroup *echo.Group, h history.Handler) {
	historyGroup.GET("", h.ListHistory())
}
