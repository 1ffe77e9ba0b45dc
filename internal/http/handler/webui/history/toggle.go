package history

import (
	"context"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/form"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/authn"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	commonComp "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
	"github.com/pkg/errors"
)

func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.PathValue("id")
	if id == "" {
		common.HandleError(w, r, common.NewError("missing url id", http.StatusText(http.StatusBadRequest), http.StatusBadRequest))
		return
	}

	toggle := h.guard.Wrap(r, "toggle", func(ctx context.Context, _ form.Values) error {
		if err := h.client.ToggleURL(ctx, id); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	if err := toggle(ctx, nil); err != nil {
		if common.IsReplayed(err) {
			common.Flash(w, r, h.sessions, session.FlashInfo, commonComp.T(ctx, "flash.already_submitted"))
			common.Redirect(w, r, h.indexURL(r))
			return
		}

		h.handleAPIError(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "url toggled", "url", id)

	common.Flash(w, r, h.sessions, session.FlashSuccess, commonComp.T(ctx, "history.toggled"))
	common.Redirect(w, r, h.indexURL(r))
}

func (h *Handler) handleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	authn.HandleAPIError(w, r, h.sessions, err, h.indexURL(r))
}

// indexURL returns the history page URL keeping the filters and page of the
// current request.
func (h *Handler) indexURL(r *http.Request) string {
	ctx := r.Context()
	return string(commonComp.BaseURL(ctx, commonComp.WithPath("/history/"), commonComp.WithRawQuery(r.URL.RawQuery)))
}
