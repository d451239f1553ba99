// internal/pkg/apperr/errors.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Class identifies the failure category of an error. Handlers map classes
// to HTTP status codes; everything unclassified is treated as Internal.
type Class int

const (
	Internal Class = iota
	Validation
	NotFound
	Conflict
	Unauthorized
	Unavailable
)

// Error is an error with an attached class and a client-safe message.
type Error struct {
	Class   Class
	Message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// New creates a classified error with a client-safe message.
func New(class Class, format string, args ...interface{}) *Error {
	return &Error{Class: class, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a class and message to an underlying error. The underlying
// error is kept for server-side logging but never sent to clients.
func Wrap(class Class, err error, message string) *Error {
	return &Error{Class: class, Message: message, err: err}
}

// ClassOf returns the class of err, or Internal for unclassified errors.
func ClassOf(err error) Class {
	var e *Error
	if errors.As(err, &e) {
		return e.Class
	}
	return Internal
}

// MessageOf returns the client-safe message for err. Unclassified errors get
// a generic message so internal details stay out of responses.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Server error"
}

// HTTPStatus maps an error to its response status code.
func HTTPStatus(err error) int {
	switch ClassOf(err) {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Unauthorized:
		return http.StatusUnauthorized
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
