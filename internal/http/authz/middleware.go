package authz

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	httpCtx "github.com/DDeenis/url-shortener-frontend/internal/http/context"
	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/pkg/errors"
)

type AssertFunc func(ctx context.Context, user *api.User) (bool, error)

func IsAuthenticated(ctx context.Context, user *api.User) (bool, error) {
	return user != nil, nil
}

func IsAnonymous(ctx context.Context, user *api.User) (bool, error) {
	return user == nil, nil
}

func Is(username string) AssertFunc {
	return func(ctx context.Context, user *api.User) (bool, error) {
		return user != nil && user.Username == username, nil
	}
}

func OneOf(funcs ...AssertFunc) AssertFunc {
	return func(ctx context.Context, user *api.User) (bool, error) {
		for _, fn := range funcs {
			allowed, err := fn(ctx, user)
			if err != nil {
				return false, errors.WithStack(err)
			}

			if allowed {
				return true, nil
			}
		}

		return false, nil
	}
}

func Assert(ctx context.Context, user *api.User, funcs ...AssertFunc) (bool, error) {
	for _, fn := range funcs {
		allowed, err := fn(ctx, user)
		if err != nil {
			return false, errors.WithStack(err)
		}

		if !allowed {
			return false, nil
		}
	}

	return true, nil
}

func Middleware(forbidden http.Handler, funcs ...AssertFunc) func(h http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			user := httpCtx.User(ctx)

			allowed, err := Assert(ctx, user, funcs...)
			if err != nil {
				slog.ErrorContext(ctx, "could not assert user authorizations", slogx.Error(errors.WithStack(err)))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !allowed {
				if forbidden == nil {
					http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				} else {
					forbidden.ServeHTTP(w, r)
				}
				return
			}

			h.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
