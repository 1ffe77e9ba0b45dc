package setup

import (
	"context"
	"log/slog"
	"time"

	"github.com/DDeenis/url-shortener-frontend/internal/config"
	"github.com/DDeenis/url-shortener-frontend/internal/http"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/authn"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/health"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/metrics"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	"github.com/DDeenis/url-shortener-frontend/internal/http/i18n"
	"github.com/DDeenis/url-shortener-frontend/internal/http/pprof"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
	"github.com/DDeenis/url-shortener-frontend/internal/store/repository/link"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure store from config")
	}

	sessions, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session store from config")
	}

	client, err := getAPIClientFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure backend client from config")
	}

	guard, err := getSubmissionGuardFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure submission guard from config")
	}

	authn := authn.NewHandler(sessions, client, guard, authn.WithLogger(slog.Default()))

	sessionMiddleware := session.Middleware(sessions)
	authnMiddleware := authn.Middleware()
	i18nMiddleware := i18n.Middleware(conf.I18n.DefaultLanguage)

	assets := common.NewAssetsHandler(conf.HTTP.Assets.MaxAge)

	webui := webui.NewHandler(
		client,
		link.NewRepository(store),
		sessions,
		guard,
		webui.WithRecentLinks(conf.Storage.Database.RecentLinks),
		webui.WithPageSize(conf.History.PageSize),
		webui.WithLogger(slog.Default()),
	)

	health := health.NewHandler(map[string]health.Pinger{
		"store":   store,
		"backend": client,
	}, 5*time.Second)

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithLogger(slog.Default()),
		http.WithMount("/assets/", assets),
		http.WithMount("/health/", health),
		http.WithMount("/auth/", i18nMiddleware(sessionMiddleware(authnMiddleware(authn)))),
		http.WithMount("/", i18nMiddleware(sessionMiddleware(authnMiddleware(webui)))),
	}

	if conf.HTTP.Metrics.Enabled {
		options = append(options, http.WithMount("/metrics/", metrics.NewHandler(prometheus.DefaultGatherer, conf.HTTP.Metrics.Token)))
	}

	if conf.HTTP.Pprof.Enabled {
		options = append(options, http.WithMount("/pprof/", pprof.NewHandler()))
	}

	server := http.NewServer(options...)

	return server, nil
}
