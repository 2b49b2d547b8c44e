package middleware

import (
	"strings"

	"github.com/amankumarsingh77/reelfetch/pkg/httpErrors"
	"github.com/amankumarsingh77/reelfetch/pkg/utils"
	"github.com/labstack/echo/v4"
)

// CallbackJobIDKey holds the job id a callback token was minted for.
const CallbackJobIDKey = "callback_job_id"

// CallbackAuthMiddleware requires a worker capability token on progress
// callbacks when a callback secret is configured. The handler compares the
// token's job id with the job id in the body.
func (mw *MiddlewareManager) CallbackAuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secret := mw.cfg.Worker.CallbackSecret
		if secret == "" {
			return next(c)
		}

		bearerHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		headerParts := strings.SplitN(bearerHeader, " ", 2)
		if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "Bearer") || headerParts[1] == "" {
			mw.logger.Warnf("CallbackAuthMiddleware RequestID: %s, missing bearer token", utils.GetRequestID(c))
			return c.JSON(httpErrors.ErrorResponse(httpErrors.NewUnauthorizedError("missing callback token")))
		}

		claims, err := utils.ValidateCallbackToken(headerParts[1], secret)
		if err != nil {
			mw.logger.Warnf("CallbackAuthMiddleware RequestID: %s, ValidateCallbackToken: %v", utils.GetRequestID(c), err)
			return c.JSON(httpErrors.ErrorResponse(httpErrors.NewUnauthorizedError("invalid callback token")))
		}

		c.Set(CallbackJobIDKey, claims.JobID)
		return next(c)
	}
}
