package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	"github.com/DDeenis/url-shortener-frontend/internal/config"
	"github.com/pkg/errors"
)

var getAPIClientFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*api.Client, error) {
	client, err := api.NewClient(
		conf.API.BaseURL,
		api.WithTimeout(conf.API.Timeout),
		api.WithShortLinkBaseURL(conf.API.ShortLinkBaseURL),
		api.WithHTTPClient(&http.Client{
			// Redirects of the backend are errors, not pages to follow
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}),
		api.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not create backend client")
	}

	return client, nil
})
