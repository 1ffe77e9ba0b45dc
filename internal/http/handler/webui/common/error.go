package common

import (
	"net/http"

	"github.com/pkg/errors"
)

// Error is rendered by HandleError with its status code and user message.
// The cause, if any, stays reachable through errors.Is and errors.As.
type Error struct {
	cause       error
	userMessage string
	statusCode  int
}

func (e *Error) StatusCode() int {
	return e.statusCode
}

func (e *Error) Error() string {
	return e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) UserMessage() string {
	return e.userMessage
}

func NewError(err string, userMessage string, statusCode int) *Error {
	return &Error{errors.New(err), userMessage, statusCode}
}

func WrapError(cause error, userMessage string, statusCode int) *Error {
	return &Error{cause, userMessage, statusCode}
}

// BadRequest flags an unreadable request body, typically a form that could
// not be parsed.
func BadRequest(cause error) *Error {
	return WrapError(cause, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
}

var (
	_ UserFacingError = &Error{}
	_ HTTPError       = &Error{}
)
