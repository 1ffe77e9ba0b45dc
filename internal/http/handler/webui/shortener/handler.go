package shortener

import (
	"log/slog"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
	"github.com/DDeenis/url-shortener-frontend/internal/store/repository/link"
)

type Handler struct {
	mux         *http.ServeMux
	client      *api.Client
	links       *link.Repository
	sessions    *session.Store
	guard       *common.SubmissionGuard
	recentLinks int
	logger      *slog.Logger
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(client *api.Client, links *link.Repository, sessions *session.Store, guard *common.SubmissionGuard, recentLinks int, logger *slog.Logger) *Handler {
	h := &Handler{
		mux:         http.NewServeMux(),
		client:      client,
		links:       links,
		sessions:    sessions,
		guard:       guard,
		recentLinks: recentLinks,
		logger:      logger.With("component", "shortener-handler"),
	}

	h.mux.HandleFunc("GET /{$}", h.getIndexPage)
	h.mux.HandleFunc("POST /{$}", h.handleShorten)

	return h
}

var _ http.Handler = &Handler{}
