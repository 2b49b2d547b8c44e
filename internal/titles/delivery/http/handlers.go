package http

import (
	"net/http"

	"github.com/amankumarsingh77/reelfetch/internal/titles"
	"github.com/amankumarsingh77/reelfetch/pkg/httpErrors"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/amankumarsingh77/reelfetch/pkg/utils"
	"github.com/labstack/echo/v4"
)

type titlesHandler struct {
	titlesUC titles.UseCase
	logger   logger.Logger
}

func NewTitlesHandler(titlesUC titles.UseCase, log logger.Logger) titles.Handler {
	return &titlesHandler{titlesUC: titlesUC, logger: log}
}

func (h *titlesHandler) GetDetails() echo.HandlerFunc {
	return func(c echo.Context) error {
		titleID, ok := utils.ParseTitleID(c.Param("id"))
		if !ok {
			return c.JSON(httpErrors.ErrorResponse(httpErrors.NewBadRequestError("invalid title id")))
		}
		details, err := h.titlesUC.GetDetails(utils.GetRequestCtx(c), titleID)
		if err != nil {
			utils.LogResponseError(c, h.logger, err)
			return c.JSON(httpErrors.ErrorResponse(err))
		}
		return c.JSON(http.StatusOK, details)
	}
}
