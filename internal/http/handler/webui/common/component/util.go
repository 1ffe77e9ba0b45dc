package component

import (
	"context"
	"net/url"
	"time"

	"github.com/DDeenis/url-shortener-frontend/internal/http/authz"
	httpCtx "github.com/DDeenis/url-shortener-frontend/internal/http/context"
	httpURL "github.com/DDeenis/url-shortener-frontend/internal/http/url"
	"github.com/a-h/templ"
	"github.com/invopop/ctxi18n/i18n"
	"github.com/pkg/errors"
)

var (
	WithPath        = httpURL.WithPath
	WithPathf       = httpURL.WithPathf
	WithoutValues   = httpURL.WithoutValues
	WithValuesReset = httpURL.WithValuesReset
	WithValues      = httpURL.WithValues
	WithQuery       = httpURL.WithQuery
	WithRawQuery    = httpURL.WithRawQuery
)

func WithUser(username string, password string) httpURL.MutationFunc {
	return func(u *url.URL) {
		u.User = url.UserPassword(username, password)
	}
}

func BaseURL(ctx context.Context, funcs ...httpURL.MutationFunc) templ.SafeURL {
	baseURL := httpCtx.BaseURL(ctx)
	mutated := httpURL.Mutate(baseURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func CurrentURL(ctx context.Context, funcs ...httpURL.MutationFunc) templ.SafeURL {
	currentURL := clone(httpCtx.CurrentURL(ctx))
	mutated := httpURL.Mutate(currentURL, funcs...)
	return templ.SafeURL(mutated.String())
}

func MatchPath(ctx context.Context, path string) bool {
	currentURL := httpCtx.CurrentURL(ctx)
	return currentURL.Path == path
}

func clone[T any](v *T) *T {
	copy := *v
	return &copy
}

func AssertUser(ctx context.Context, funcs ...authz.AssertFunc) bool {
	user := httpCtx.User(ctx)
	if user == nil {
		return false
	}

	allowed, err := authz.Assert(ctx, user, funcs...)
	if err != nil {
		panic(errors.WithStack(err))
	}

	return allowed
}

var User = httpCtx.User

// T translates key in the locale of ctx.
func T(ctx context.Context, key string, args ...any) string {
	return i18n.T(ctx, key, args...)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("02/01/2006")
}
