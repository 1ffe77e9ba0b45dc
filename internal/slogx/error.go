package slogx

import (
	"fmt"
	"log/slog"
)

const ErrorKey = "error"

func Error(err error) slog.Attr {
	return slog.Any(ErrorKey, err)
}

// ErrorWithStack formats err with its stack trace when it carries one.
func ErrorWithStack(err error) slog.Attr {
	return slog.String(ErrorKey, fmt.Sprintf("%+v", err))
}
