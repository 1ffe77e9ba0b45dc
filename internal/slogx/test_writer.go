package slogx

import (
	"bytes"
	"log/slog"
	"testing"
)

// TestWriter forwards log lines to the test output.
type TestWriter struct {
	t testing.TB
}

func (w *TestWriter) Write(p []byte) (n int, err error) {
	w.t.Logf("%s", bytes.TrimSuffix(p, []byte("\n")))

	return len(p), nil
}

// NewTestLogger returns a debug logger writing to the test output, without
// timestamps and with the context attributes.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()

	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}

	handler := slog.NewTextHandler(&TestWriter{t: t}, opts)

	return slog.New(ContextHandler{Handler: handler})
}
