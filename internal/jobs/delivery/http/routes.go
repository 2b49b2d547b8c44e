package http

import (
	"github.com/amankumarsingh77/reelfetch/internal/jobs"
	"github.com/amankumarsingh77/reelfetch/internal/middleware"
	"github.com/labstack/echo/v4"
)

func MapJobsRoutes(titlesGroup, jobsGroup, internalGroup *echo.Group, h jobs.Handler, mw *middleware.MiddlewareManager) {
	titlesGroup.POST("/:id/fetch", h.RequestAcquisition())
	jobsGroup.GET("", h.ListJobs())
	jobsGroup.GET("/:jobId", h.GetJob())
	internalGroup.POST("/progress", h.ReportProgress(), mw.CallbackAuthMiddleware)
}
