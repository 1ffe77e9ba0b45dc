package config

import (
	"io"
	"log/slog"
)

type Logger struct {
	Level slog.Level `env:"LEVEL,expand" envDefault:"info"`
	// Format is either "text" or "json"
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

// Handler returns the log handler matching the configured format.
func (l Logger) Handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     l.Level,
		AddSource: l.AddSource,
	}

	if l.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}
