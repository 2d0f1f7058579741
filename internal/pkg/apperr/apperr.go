package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a domain error carrying the HTTP status it maps to. Everything
// below the user service returns one of these; only the handler boundary
// turns them into a response envelope.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Upload wraps a remote-store failure. The cause is kept for logs but never
// echoed to the client verbatim.
func Upload(message string, cause error) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, Err: cause}
}

func Internal(message string, cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: cause}
}

// From extracts the *Error from err, or wraps err as a 500 internal error.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Something went wrong", err)
}
