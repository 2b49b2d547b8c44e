package http

import (
	"net/http"

	"github.com/amankumarsingh77/reelfetch/internal/history"
	"github.com/amankumarsingh77/reelfetch/pkg/httpErrors"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/amankumarsingh77/reelfetch/pkg/utils"
	"github.com/labstack/echo/v4"
)

type historyHandler struct {
	historyUC history.UseCase
	logger    logger.Logger
}

func NewHistoryHandler(historyUC history.UseCase, log logger.Logger) history.Handler {
	return &historyHandler{historyUC: historyUC, logger: log}
}

func (h *historyHandler) ListHistory() echo.HandlerFunc {
	return func(c echo.Context) error {
		pq, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(httpErrors.ErrorResponse(httpErrors.NewBadRequestError(err.Error())))
		}
		list, err := h.historyUC.ListHistory(utils.GetRequestCtx(c), pq)
		if err != nil {
			utils.LogResponseError(c, h.logger, err)
			return c.JSON(httpErrors.ErrorResponse(err))
		}
		return c.JSON(http.StatusOK, list)
	}
}
