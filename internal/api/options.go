package api

import (
	"log/slog"
	"net/http"
	"time"
)

type Options struct {
	HTTPClient       *http.Client
	Timeout          time.Duration
	Logger           *slog.Logger
	ShortLinkBaseURL string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
		Logger:     slog.Default(),
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithHTTPClient(client *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = client
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithShortLinkBaseURL sets the origin of the short links, which defaults to
// the backend base URL.
func WithShortLinkBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.ShortLinkBaseURL = baseURL
	}
}
