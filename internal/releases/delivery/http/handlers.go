package http

import (
	"net/http"

	"github.com/amankumarsingh77/reelfetch/internal/releases"
	"github.com/amankumarsingh77/reelfetch/pkg/httpErrors"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/amankumarsingh77/reelfetch/pkg/utils"
	"github.com/labstack/echo/v4"
)

type releasesHandler struct {
	releasesUC releases.UseCase
	logger     logger.Logger
}

func NewReleasesHandler(releasesUC releases.UseCase, log logger.Logger) releases.Handler {
	return &releasesHandler{releasesUC: releasesUC, logger: log}
}

func (h *releasesHandler) ListReleases() echo.HandlerFunc {
	return func(c echo.Context) error {
		titleID, ok := utils.ParseTitleID(c.Param("id"))
		if !ok {
			return c.JSON(httpErrors.ErrorResponse(httpErrors.NewBadRequestError("invalid title id")))
		}
		list, err := h.releasesUC.ListForTitle(utils.GetRequestCtx(c), titleID, c.QueryParam("quality"))
		if err != nil {
			utils.LogResponseError(c, h.logger, err)
			return c.JSON(httpErrors.ErrorResponse(err))
		}
		return c.JSON(http.StatusOK, list)
	}
}
