package httpErrors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
	CodeInternal     = "INTERNAL_ERROR"
	CodeStorage      = "STORAGE_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
)

var (
	ErrBadRequest     = errors.New("bad request")
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInternalServer = errors.New("internal server error")
	ErrRequestTimeout = errors.New("request timeout")
)

// RestErr is what every handler hands back to the client.
type RestErr interface {
	Status() int
	Code() string
	Error() string
	Causes() interface{}
}

type RestError struct {
	ErrStatus  int         `json:"-"`
	ErrCode    string      `json:"code"`
	ErrMessage string      `json:"message"`
	ErrCauses  interface{} `json:"causes,omitempty"`
}

func (e RestError) Error() string {
	return fmt.Sprintf("status: %d - code: %s - message: %s", e.ErrStatus, e.ErrCode, e.ErrMessage)
}

func (e RestError) Status() int {
	return e.ErrStatus
}

func (e RestError) Code() string {
	return e.ErrCode
}

func (e RestError) Causes() interface{} {
	return e.ErrCauses
}

func NewRestError(status int, code, message string, causes interface{}) RestErr {
	return RestError{
		ErrStatus:  status,
		ErrCode:    code,
		ErrMessage: message,
		ErrCauses:  causes,
	}
}

func NewBadRequestError(message string) RestErr {
	return RestError{ErrStatus: http.StatusBadRequest, ErrCode: CodeInvalidInput, ErrMessage: message}
}

func NewNotFoundError(message string) RestErr {
	return RestError{ErrStatus: http.StatusNotFound, ErrCode: CodeNotFound, ErrMessage: message}
}

func NewUnauthorizedError(message string) RestErr {
	return RestError{ErrStatus: http.StatusUnauthorized, ErrCode: CodeUnauthorized, ErrMessage: message}
}

func NewInternalServerError(message string) RestErr {
	return RestError{ErrStatus: http.StatusInternalServerError, ErrCode: CodeInternal, ErrMessage: message}
}

// NewUpstreamError is an internal error caused by a collaborator (TMDB, the indexer).
func NewUpstreamError(message string) RestErr {
	return RestError{ErrStatus: http.StatusBadGateway, ErrCode: CodeInternal, ErrMessage: message}
}

// NewStorageError signals a ready job whose object is missing from the bucket.
func NewStorageError(message string) RestErr {
	return RestError{ErrStatus: http.StatusBadGateway, ErrCode: CodeStorage, ErrMessage: message}
}

// ParseErrors maps any error returned by a use case onto the taxonomy.
func ParseErrors(err error) RestErr {
	var restErr RestErr
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &restErr):
		return restErr
	case errors.As(err, &validationErrs):
		return RestError{
			ErrStatus:  http.StatusBadRequest,
			ErrCode:    CodeInvalidInput,
			ErrMessage: validationMessage(validationErrs),
		}
	case errors.Is(err, sql.ErrNoRows):
		return NewNotFoundError(ErrNotFound.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return NewRestError(http.StatusRequestTimeout, CodeInternal, ErrRequestTimeout.Error(), nil)
	default:
		return NewInternalServerError(ErrInternalServer.Error())
	}
}

func validationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return ErrBadRequest.Error()
	}
	fe := errs[0]
	if fe.Param() != "" {
		return fmt.Sprintf("invalid %s: must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("invalid %s: %s", fe.Field(), fe.Tag())
}

type errorEnvelope struct {
	Error RestError `json:"error"`
}

// ErrorResponse returns the status and JSON body for err.
func ErrorResponse(err error) (int, interface{}) {
	restErr := ParseErrors(err)
	return restErr.Status(), errorEnvelope{Error: RestError{
		ErrStatus:  restErr.Status(),
		ErrCode:    restErr.Code(),
		ErrMessage: message(restErr),
		ErrCauses:  restErr.Causes(),
	}}
}

func message(restErr RestErr) string {
	if re, ok := restErr.(RestError); ok {
		return re.ErrMessage
	}
	return restErr.Error()
}
