package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

type ErrorCode string

const (
	ErrCodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeGuestNotFound    ErrorCode = "GUEST_NOT_FOUND"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// StandardError is the single error shape written to HTTP clients.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Body is the JSON payload for an error response. The "error" field carries the
// human readable message.
type Body struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code,omitempty"`
	Retryable bool      `json:"retryable"`
}

func (e *StandardError) Body() Body {
	return Body{Error: e.Message, Code: e.Code, Retryable: e.Retryable}
}

// NewStoreUnavailableError reports that the backing store could not serve the request.
// The client may retry; the server never does.
func NewStoreUnavailableError(message string, err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return &StandardError{
		Code:      ErrCodeStoreUnavailable,
		Message:   message,
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewRoomNotFoundError(message, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRoomNotFound,
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewGuestNotFoundError(message, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeGuestNotFound,
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInvalidInputError(message, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Message:   message,
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatus maps an error code to the response status.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeRoomNotFound, ErrCodeGuestNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "STORE"):
		return "DATABASE"
	case strings.Contains(codeStr, "NOT_FOUND"):
		return "NOT_FOUND"
	case strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
