package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidState      = errors.New("invalid state")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrConflict          = errors.New("conflict")
)

// Error codes carried in AppError.Code
const (
	CodeNotFound          = "ERR_NOT_FOUND"
	CodeInvalidInput      = "ERR_INVALID_INPUT"
	CodeInvalidTransition = "ERR_INVALID_TRANSITION"
	CodeInvalidState      = "ERR_INVALID_STATE"
	CodeForbidden         = "ERR_FORBIDDEN"
	CodeUnauthorized      = "ERR_UNAUTHORIZED"
	CodeUnauthenticated   = "ERR_UNAUTHENTICATED"
	CodeConflict          = "ERR_CONFLICT"
	CodeInternalError     = "ERR_INTERNAL"
)

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

// Unwrap exposes the sentinel so callers can use errors.Is
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidInput, message, ErrInvalidInput)
}

// InvalidTransition reports a status change that the transition table does not allow
func InvalidTransition(from, to string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidTransition,
		fmt.Sprintf("invalid status transition from %s to %s", from, to), ErrInvalidTransition)
}

func InvalidState(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidState, message, ErrInvalidState)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

// Unauthorized is returned when an identified caller does not own or take part in the resource.
func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeUnauthorized, message, ErrUnauthorized)
}

// Unauthenticated is returned when no valid principal accompanies the request.
func Unauthenticated(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthenticated, message, ErrUnauthenticated)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrConflict)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}

// FromError classifies any error into an AppError. Bare sentinels get their
// default status; everything unknown becomes an internal error.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return NotFound("resource not found")
	case errors.Is(err, ErrInvalidInput):
		return BadRequest(err.Error())
	case errors.Is(err, ErrInvalidTransition):
		return NewAppError(http.StatusBadRequest, CodeInvalidTransition, err.Error(), ErrInvalidTransition)
	case errors.Is(err, ErrInvalidState):
		return InvalidState(err.Error())
	case errors.Is(err, ErrForbidden):
		return Forbidden(err.Error())
	case errors.Is(err, ErrUnauthorized):
		return Unauthorized(err.Error())
	case errors.Is(err, ErrUnauthenticated):
		return Unauthenticated(err.Error())
	case errors.Is(err, ErrConflict):
		return Conflict(err.Error())
	}
	return InternalError(err)
}
