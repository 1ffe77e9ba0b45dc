package session

import (
	"context"
	"log/slog"
	"net/http"

	httpCtx "github.com/DDeenis/url-shortener-frontend/internal/http/context"
	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/pkg/errors"
)

const keyFlashes = "flashes"

// ContextFlashes returns the flashes consumed for the current request.
func ContextFlashes(ctx context.Context) []Flash {
	flashes, ok := ctx.Value(keyFlashes).([]Flash)
	if !ok {
		return nil
	}

	return flashes
}

// Middleware exposes the visitor identifier and the pending flashes of the
// session through the request context.
func Middleware(store *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			visitor, err := store.Visitor(w, r)
			if err != nil {
				slog.ErrorContext(ctx, "could not retrieve session visitor", slogx.Error(errors.WithStack(err)))
			}

			flashes, err := store.Flashes(w, r)
			if err != nil {
				slog.ErrorContext(ctx, "could not retrieve session flashes", slogx.Error(errors.WithStack(err)))
			}

			ctx = httpCtx.SetVisitor(ctx, visitor)
			ctx = slogx.WithAttrs(ctx, slog.String("visitor", visitor))
			ctx = context.WithValue(ctx, keyFlashes, flashes)

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}
