package api

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrConflict           = errors.New("conflict")
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// Error is a message returned by the backend as a JSON string body.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// UserMessage exposes the backend message to the visitor.
func (e *Error) UserMessage() string {
	return e.Message
}

type UnexpectedStatusError struct {
	StatusCode int
	Body       string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

func (e *UnexpectedStatusError) Unwrap() error {
	return ErrUnexpectedResponse
}
