package common

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/form"
	httpCtx "github.com/DDeenis/url-shortener-frontend/internal/http/context"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/DDeenis/url-shortener-frontend/internal/store/repository/submission"
	"github.com/pkg/errors"
	"github.com/rs/xid"
)

var ErrMissingToken = NewError("missing submission token", "The form could not be verified, please try again", http.StatusBadRequest)

// SubmissionGuard ensures a rendered form is submitted at most once, even
// across requests.
type SubmissionGuard struct {
	repository *submission.Repository
}

func NewSubmissionGuard(repository *submission.Repository) *SubmissionGuard {
	return &SubmissionGuard{
		repository: repository,
	}
}

// Token returns a fresh token to embed into a rendered form.
func (g *SubmissionGuard) Token() string {
	return xid.New().String()
}

// Wrap returns a submit callback consuming the token posted with r before
// calling cb. The token is released when cb fails so that the visitor can
// retry.
func (g *SubmissionGuard) Wrap(r *http.Request, name string, cb form.SubmitFunc) form.SubmitFunc {
	token := r.PostFormValue(component.TokenField)

	return func(ctx context.Context, values form.Values) error {
		if token == "" {
			return errors.WithStack(ErrMissingToken)
		}

		if err := g.repository.Consume(ctx, token, name, httpCtx.Visitor(ctx)); err != nil {
			return errors.WithStack(err)
		}

		if err := cb(ctx, values); err != nil {
			if releaseErr := g.repository.Release(ctx, token); releaseErr != nil {
				slog.ErrorContext(ctx, "could not release submission token", slogx.Error(errors.WithStack(releaseErr)))
			}

			return errors.WithStack(err)
		}

		return nil
	}
}

func IsReplayed(err error) bool {
	return errors.Is(err, submission.ErrReplayed)
}
