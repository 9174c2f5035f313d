package errors

import (
	"time"

	"github.com/labstack/echo/v4"
)

type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Respond normalizes err, logs it and writes the JSON error body.
func (h *ErrorHandler) Respond(c echo.Context, err error) error {
	stdErr := h.normalizeError(err)
	h.logError(c, stdErr)
	return c.JSON(HTTPStatus(stdErr.Code), stdErr.Body())
}

func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func (h *ErrorHandler) logError(c echo.Context, stdErr *StandardError) {
	fields := map[string]interface{}{
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"errorCategory": GetErrorCategory(stdErr.Code),
		"method":        c.Request().Method,
		"path":          c.Path(),
		"requestId":     c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if HTTPStatus(stdErr.Code) >= 500 {
		h.logger.Error("request failed", fields)
		return
	}
	h.logger.Warn("request rejected", fields)
}
