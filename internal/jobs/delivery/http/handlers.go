package http

import (
	"net/http"

	"github.com/amankumarsingh77/reelfetch/internal/jobs"
	"github.com/amankumarsingh77/reelfetch/internal/middleware"
	"github.com/amankumarsingh77/reelfetch/internal/models"
	"github.com/amankumarsingh77/reelfetch/pkg/httpErrors"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/amankumarsingh77/reelfetch/pkg/utils"
	"github.com/labstack/echo/v4"
)

type jobsHandler struct {
	jobsUC jobs.UseCase
	logger logger.Logger
}

func NewJobsHandler(jobsUC jobs.UseCase, log logger.Logger) jobs.Handler {
	return &jobsHandler{jobsUC: jobsUC, logger: log}
}

func (h *jobsHandler) RequestAcquisition() echo.HandlerFunc {
	return func(c echo.Context) error {
		titleID, ok := utils.ParseTitleID(c.Param("id"))
		if !ok {
			return c.JSON(httpErrors.ErrorResponse(httpErrors.NewBadRequestError("invalid title id")))
		}
		input := &models.AcquisitionInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(httpErrors.ErrorResponse(httpErrors.NewBadRequestError("invalid request payload")))
		}
		input.TitleID = titleID
		if input.Mode == "" {
			input.Mode = "auto"
		}

		res, err := h.jobsUC.RequestAcquisition(utils.GetRequestCtx(c), input)
		if err != nil {
			utils.LogResponseError(c, h.logger, err)
			return c.JSON(httpErrors.ErrorResponse(err))
		}
		return c.JSON(http.StatusAccepted, res)
	}
}

func (h *jobsHandler) GetJob() echo.HandlerFunc {
	return func(c echo.Context) error {
		job, err := h.jobsUC.GetJobStatus(utils.GetRequestCtx(c), c.Param("jobId"))
		if err != nil {
			utils.LogResponseError(c, h.logger, err)
			return c.JSON(httpErrors.ErrorResponse(err))
		}
		return c.JSON(http.StatusOK, job)
	}
}

func (h *jobsHandler) ListJobs() echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := h.jobsUC.ListJobs(utils.GetRequestCtx(c), c.QueryParam("status"))
		if err != nil {
			utils.LogResponseError(c, h.logger, err)
			return c.JSON(httpErrors.ErrorResponse(err))
		}
		return c.JSON(http.StatusOK, list)
	}
}

func (h *jobsHandler) ReportProgress() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.ProgressInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(httpErrors.ErrorResponse(httpErrors.NewBadRequestError("invalid request payload")))
		}
		if tokenJobID, ok := c.Get(middleware.CallbackJobIDKey).(string); ok && tokenJobID != input.JobID {
			h.logger.Warnf("ReportProgress RequestID: %s, token for %s used for %s", utils.GetRequestID(c), tokenJobID, input.JobID)
			return c.JSON(httpErrors.ErrorResponse(httpErrors.NewUnauthorizedError("callback token does not match job")))
		}

		res, err := h.jobsUC.ReportProgress(utils.GetRequestCtx(c), input)
		if err != nil {
			utils.LogResponseError(c, h.logger, err)
			return c.JSON(httpErrors.ErrorResponse(err))
		}
		return c.JSON(http.StatusOK, res)
	}
}
