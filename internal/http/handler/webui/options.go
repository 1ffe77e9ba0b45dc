package webui

import "log/slog"

type Options struct {
	// RecentLinks is the number of links kept per visitor on the shortener
	// page
	RecentLinks int
	// PageSize is the default number of links per history page
	PageSize int
	Logger   *slog.Logger
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		RecentLinks: 5,
		PageSize:    10,
		Logger:      slog.Default(),
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithRecentLinks(recentLinks int) OptionFunc {
	return func(opts *Options) {
		opts.RecentLinks = recentLinks
	}
}

func WithPageSize(pageSize int) OptionFunc {
	return func(opts *Options) {
		opts.PageSize = pageSize
	}
}

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
