package setup

import (
	"context"
	"log/slog"
	"time"

	"github.com/DDeenis/url-shortener-frontend/internal/config"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/DDeenis/url-shortener-frontend/internal/store/repository/submission"
	"github.com/pkg/errors"
)

var getSubmissionRepositoryFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*submission.Repository, error) {
	st, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return submission.NewRepository(st), nil
})

var getSubmissionGuardFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*common.SubmissionGuard, error) {
	repo, err := getSubmissionRepositoryFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return common.NewSubmissionGuard(repo), nil
})

// StartSubmissionPurge periodically forgets the submission tokens consumed
// before the configured TTL, until ctx is done.
func StartSubmissionPurge(ctx context.Context, conf *config.Config) error {
	repo, err := getSubmissionRepositoryFromConfig(ctx, conf)
	if err != nil {
		return errors.WithStack(err)
	}

	ttl := conf.Storage.Database.SubmissionTTL

	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deleted, err := repo.Purge(ctx, time.Now().Add(-ttl))
				if err != nil {
					slog.ErrorContext(ctx, "could not purge submission tokens", slogx.Error(errors.WithStack(err)))
					continue
				}

				slog.DebugContext(ctx, "submission tokens purged", slog.Int64("deleted", deleted))
			}
		}
	}()

	return nil
}
