package webui

import (
	"net/http"
	"strings"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	historyModule "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/history"
	profileModule "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/profile"
	shortenerModule "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/shortener"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
	"github.com/DDeenis/url-shortener-frontend/internal/store/repository/link"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(client *api.Client, links *link.Repository, sessions *session.Store, guard *common.SubmissionGuard, funcs ...OptionFunc) *Handler {
	opts := NewOptions(funcs...)
	mux := http.NewServeMux()

	h := &Handler{
		mux: mux,
	}

	mount(mux, "/", shortenerModule.NewHandler(client, links, sessions, guard, opts.RecentLinks, opts.Logger))
	mount(mux, "/history/", historyModule.NewHandler(client, sessions, guard, opts.PageSize, opts.Logger))
	mount(mux, "/profile/", profileModule.NewHandler(client, sessions, guard, opts.Logger))

	return h
}

func mount(mux *http.ServeMux, prefix string, handler http.Handler) {
	trimmed := strings.TrimSuffix(prefix, "/")

	if len(trimmed) > 0 {
		mux.Handle(prefix, http.StripPrefix(trimmed, handler))
	} else {
		mux.Handle(prefix, handler)
	}
}

var _ http.Handler = &Handler{}
