// Package apperror defines the error kinds handlers translate into HTTP
// responses. Match kinds with errors.Is.
package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrTooManyRequests = errors.New("too many requests")
	ErrInternal        = errors.New("internal error")
)

// Error carries a client-safe message together with its kind.
type Error struct {
	Kind    error
	Message string
}

func New(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func Validation(message string) *Error   { return New(ErrValidation, message) }
func NotFound(message string) *Error     { return New(ErrNotFound, message) }
func Forbidden(message string) *Error    { return New(ErrForbidden, message) }
func Conflict(message string) *Error     { return New(ErrConflict, message) }
func Unauthorized(message string) *Error { return New(ErrUnauthenticated, message) }

// Status maps err to an HTTP status code and the message that may be shown
// to the client. Anything outside the known kinds is reported as a generic
// internal error.
func Status(err error) (int, string) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, "Internal server error"
	}

	switch {
	case errors.Is(appErr, ErrValidation):
		return http.StatusBadRequest, appErr.Message
	case errors.Is(appErr, ErrUnauthenticated):
		return http.StatusUnauthorized, appErr.Message
	case errors.Is(appErr, ErrForbidden):
		return http.StatusForbidden, appErr.Message
	case errors.Is(appErr, ErrNotFound):
		return http.StatusNotFound, appErr.Message
	case errors.Is(appErr, ErrConflict):
		return http.StatusConflict, appErr.Message
	case errors.Is(appErr, ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, appErr.Message
	case errors.Is(appErr, ErrTooManyRequests):
		return http.StatusTooManyRequests, appErr.Message
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
