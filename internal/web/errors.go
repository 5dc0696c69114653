package web

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a class of web error.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// Error is a structured error rendered as HTML or JSON depending on the
// request.
type Error struct {
	Code    ErrorCode
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error.
func NewInvalidRequest(format string, args ...any) *Error {
	return &Error{Code: ErrInvalidRequest, Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound creates a 404 error for an unknown path.
func NewNotFound(path string) *Error {
	return &Error{Code: ErrNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf("page not found: %s", path)}
}

// NewInternal wraps an unexpected error. The message never leaks err.
func NewInternal(err error) *Error {
	return &Error{Code: ErrInternal, Status: http.StatusInternalServerError, Message: "internal server error"}
}

// asError converts any error into an *Error.
func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewInternal(err)
}
