package utils

import (
	"context"
	"strconv"
	"strings"

	"github.com/amankumarsingh77/reelfetch/pkg/logger"
	"github.com/labstack/echo/v4"
)

func GetRequestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

func GetIPAddress(c echo.Context) string {
	return c.RealIP()
}

// ReqIDCtxKey carries the echo request id into use cases.
type ReqIDCtxKey struct{}

// GetRequestCtx returns the request context tagged with the request id.
func GetRequestCtx(c echo.Context) context.Context {
	return context.WithValue(c.Request().Context(), ReqIDCtxKey{}, GetRequestID(c))
}

func GetRequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(ReqIDCtxKey{}).(string)
	return id
}

func LogResponseError(c echo.Context, logger logger.Logger, err error) {
	logger.Errorf(
		"ErrResponseWithLog, RequestID: %s, IPAddress: %s, Error: %s",
		GetRequestID(c),
		GetIPAddress(c),
		err,
	)
}

// ParseTitleID parses a catalog id path parameter; only positive integers are valid.
func ParseTitleID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
