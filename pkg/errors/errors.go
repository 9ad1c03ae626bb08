package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness. Message is the
// public text written to clients; Err carries the internal cause.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors. Messages double as the client-facing response text.
var (
	ErrNotFound   = New("NOT_FOUND", http.StatusNotFound, "Resource Not Found")
	ErrInoperable = New("INOPERABLE_REQUEST", http.StatusUnprocessableEntity, "Inoperable Request")
	ErrServer     = New("SERVER_ERROR", http.StatusInternalServerError, "Server Error")
	ErrCacheMiss  = New("CACHE_MISS", http.StatusNotFound, "cache miss")
)

// NotFound wraps cause as a missing-resource error.
func NotFound(cause error) *Error {
	return Wrap(cause, ErrNotFound.Code, ErrNotFound.Status, ErrNotFound.Message)
}

// Inoperable wraps cause as an unprocessable-request error.
func Inoperable(cause error) *Error {
	return Wrap(cause, ErrInoperable.Code, ErrInoperable.Status, ErrInoperable.Message)
}

// Server wraps cause as an internal failure.
func Server(cause error) *Error {
	return Wrap(cause, ErrServer.Code, ErrServer.Status, ErrServer.Message)
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Server(err)
}

// HasCode reports whether err normalises to the given code.
func HasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	return FromError(err).Code == code
}

// Is matches errors by code so wrapped copies compare equal to the sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}
