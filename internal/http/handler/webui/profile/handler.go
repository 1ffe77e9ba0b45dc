package profile

import (
	"log/slog"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	"github.com/DDeenis/url-shortener-frontend/internal/http/authz"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/authn"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
)

type Handler struct {
	mux      *http.ServeMux
	client   *api.Client
	sessions *session.Store
	guard    *common.SubmissionGuard
	logger   *slog.Logger
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(client *api.Client, sessions *session.Store, guard *common.SubmissionGuard, logger *slog.Logger) *Handler {
	h := &Handler{
		mux:      http.NewServeMux(),
		client:   client,
		sessions: sessions,
		guard:    guard,
		logger:   logger.With("component", "profile-handler"),
	}

	assertUser := authz.Middleware(authn.LoginRedirect(), authz.IsAuthenticated)

	h.mux.Handle("GET /{$}", assertUser(http.HandlerFunc(h.getIndexPage)))
	h.mux.Handle("POST /details", assertUser(http.HandlerFunc(h.handleDetails)))
	h.mux.Handle("POST /password", assertUser(http.HandlerFunc(h.handlePassword)))

	return h
}

var _ http.Handler = &Handler{}
