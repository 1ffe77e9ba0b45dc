package main

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.960 generate -path ../../internal

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DDeenis/url-shortener-frontend/internal/config"
	"github.com/DDeenis/url-shortener-frontend/internal/setup"
	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf, err := config.Parse()
	if err != nil {
		slog.ErrorContext(ctx, "could not parse config", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	logger := slog.New(slogx.ContextHandler{
		Handler: conf.Logger.Handler(os.Stderr),
	})

	slog.SetDefault(logger)

	if logger.Enabled(ctx, slog.LevelDebug) {
		slog.DebugContext(ctx, "using configuration", slog.String("config", spew.Sdump(redact(*conf))))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.InfoContext(ctx, "use ctrl+c to interrupt")
		<-sig
		cancel()
	}()

	if err := setup.StartSubmissionPurge(ctx, conf); err != nil {
		slog.ErrorContext(ctx, "could not start submission purge", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	server, err := setup.NewHTTPServerFromConfig(ctx, conf)
	if err != nil {
		slog.ErrorContext(ctx, "could not setup http server", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}

	slog.InfoContext(ctx, "starting server", slog.String("address", conf.HTTP.Address), slog.String("backend", conf.API.BaseURL))

	if err := server.Run(ctx); err != nil {
		slog.Error("could not run server", slogx.Error(errors.WithStack(err)))
		os.Exit(1)
	}
}

// redact masks the secrets of the configuration before it is logged.
func redact(conf config.Config) config.Config {
	keys := make([]string, len(conf.HTTP.Session.Keys))
	for i := range keys {
		keys[i] = "***"
	}

	conf.HTTP.Session.Keys = keys

	if conf.HTTP.Metrics.Token != "" {
		conf.HTTP.Metrics.Token = "***"
	}

	return conf
}
