package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/amankumarsingh77/reelfetch/internal/stream"
	"github.com/amankumarsingh77/reelfetch/pkg/httpErrors"
	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/amankumarsingh77/reelfetch/pkg/metrics"
	"github.com/amankumarsingh77/reelfetch/pkg/utils"
	"github.com/labstack/echo/v4"
)

type streamHandler struct {
	streamUC stream.UseCase
	logger   logger.Logger
}

func NewStreamHandler(streamUC stream.UseCase, log logger.Logger) stream.Handler {
	return &streamHandler{streamUC: streamUC, logger: log}
}

func (h *streamHandler) ResolveStream() echo.HandlerFunc {
	return func(c echo.Context) error {
		descriptor, err := h.streamUC.ResolveStream(utils.GetRequestCtx(c), c.Param("id"))
		if err != nil {
			utils.LogResponseError(c, h.logger, err)
			return c.JSON(httpErrors.ErrorResponse(err))
		}
		return c.JSON(http.StatusOK, descriptor)
	}
}

func (h *streamHandler) ServeStream() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		headOnly := req.Method == http.MethodHead
		body, err := h.streamUC.ServeStream(utils.GetRequestCtx(c), c.Param("jobId"), req.Header.Get("Range"), headOnly)
		if err != nil {
			var rangeErr *stream.RangeNotSatisfiableError
			if errors.As(err, &rangeErr) {
				c.Response().Header().Set("Accept-Ranges", "bytes")
				c.Response().Header().Set("Content-Range", fmt.Sprintf("bytes */%d", rangeErr.Size))
				return c.NoContent(http.StatusRequestedRangeNotSatisfiable)
			}
			utils.LogResponseError(c, h.logger, err)
			return c.JSON(httpErrors.ErrorResponse(err))
		}
		if body.Body != nil {
			defer body.Body.Close()
		}

		header := c.Response().Header()
		header.Set(echo.HeaderContentType, body.ContentType)
		header.Set(echo.HeaderContentLength, strconv.FormatInt(body.ContentLength, 10))
		header.Set("Accept-Ranges", "bytes")
		status := http.StatusOK
		if body.Partial {
			status = http.StatusPartialContent
			header.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", body.Start, body.End, body.TotalSize))
		}
		c.Response().WriteHeader(status)
		if headOnly || body.Body == nil {
			return nil
		}

		n, err := io.Copy(c.Response(), body.Body)
		metrics.StreamBytesTotal.Add(float64(n))
		if err != nil {
			h.logger.Warnf("ServeStream RequestID: %s, copy aborted after %d bytes: %v", utils.GetRequestID(c), n, err)
		}
		return nil
	}
}
