package authn

import (
	"log/slog"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
)

type Handler struct {
	mux      *http.ServeMux
	sessions *session.Store
	client   *api.Client
	guard    *common.SubmissionGuard
	logger   *slog.Logger
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(sessions *session.Store, client *api.Client, guard *common.SubmissionGuard, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	h := &Handler{
		mux:      http.NewServeMux(),
		sessions: sessions,
		client:   client,
		guard:    guard,
		logger:   opts.Logger.With("component", "authn"),
	}

	h.mux.HandleFunc("GET /login", h.getLoginPage)
	h.mux.HandleFunc("POST /login", h.handleLogin)
	h.mux.HandleFunc("GET /register", h.getRegisterPage)
	h.mux.HandleFunc("POST /register", h.handleRegister)
	h.mux.HandleFunc("GET /logout", h.handleLogout)
	h.mux.HandleFunc("POST /logout", h.handleLogout)

	return h
}

var _ http.Handler = &Handler{}
