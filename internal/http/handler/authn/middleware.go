package authn

import (
	"log/slog"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	httpCtx "github.com/DDeenis/url-shortener-frontend/internal/http/context"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/pkg/errors"
)

// Middleware exposes the session user, if any, and its backend cookies
// through the request context. Anonymous visitors are let through.
func (h *Handler) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			user, err := h.sessions.User(r)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					slog.ErrorContext(r.Context(), "could not retrieve user from session", slogx.Error(errors.WithStack(err)))
				}

				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			ctx = httpCtx.SetUser(ctx, &user.User)
			ctx = api.WithCookies(ctx, user.HTTPCookies())
			ctx = slogx.WithAttrs(ctx, slog.String("user", user.User.Username))

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// LoginRedirect returns a handler sending the visitor to the login page.
func LoginRedirect() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		common.Redirect(w, r, string(loginURL(r)))
	})
}

// HandleAPIError reports a failed backend call. An expired backend session
// signs the user out and sends them to the login page, other errors are
// flashed before redirecting to fallback.
func HandleAPIError(w http.ResponseWriter, r *http.Request, sessions *session.Store, err error, fallback string) {
	if errors.Is(err, api.ErrUnauthorized) {
		if clearErr := sessions.ClearUser(w, r); clearErr != nil {
			slog.ErrorContext(r.Context(), "could not clear session user", slogx.Error(errors.WithStack(clearErr)))
		}

		common.Flash(w, r, sessions, session.FlashWarning, component.T(r.Context(), "flash.session_expired"))
		common.Redirect(w, r, string(loginURL(r)))
		return
	}

	common.FlashError(w, r, sessions, err)
	common.Redirect(w, r, fallback)
}
