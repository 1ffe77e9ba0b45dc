package shortener

import (
	"context"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/form"
	httpCtx "github.com/DDeenis/url-shortener-frontend/internal/http/context"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/metrics"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	commonComp "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/DDeenis/url-shortener-frontend/internal/store"
	"github.com/pkg/errors"
)

func (h *Handler) handleShorten(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := newShortenForm()
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := f.Handle(r); err != nil {
		common.HandleError(w, r, common.BadRequest(err))
		return
	}

	indexURL := string(commonComp.BaseURL(ctx, commonComp.WithPath("/")))

	var linkID string

	submit := f.OnSubmit(h.guard.Wrap(r, "shorten", func(ctx context.Context, values form.Values) error {
		shortURL, err := h.client.Shorten(ctx, values.Text("originalUrl"))
		if err != nil {
			return errors.WithStack(err)
		}

		linkID = shortURL.ID

		visitor := httpCtx.Visitor(ctx)
		if visitor == "" {
			return nil
		}

		shortLink := store.NewShortLink(visitor, shortURL.ID, shortURL.OriginalURL, h.client.ShortLink(shortURL.ID))

		if err := h.links.Add(ctx, shortLink, h.recentLinks); err != nil {
			// The link exists on the backend, only the local history is lost
			h.logger.ErrorContext(ctx, "could not save recent link", slogx.Error(errors.WithStack(err)))
		}

		return nil
	}))

	submitted, err := submit(ctx)
	metrics.ObserveSubmission("shorten", f.Form, submitted, err)

	if err != nil {
		if common.IsReplayed(err) {
			common.Flash(w, r, h.sessions, session.FlashInfo, commonComp.T(ctx, "flash.already_submitted"))
			common.Redirect(w, r, indexURL)
			return
		}

		common.FlashError(w, r, h.sessions, err)
		common.Redirect(w, r, indexURL)
		return
	}

	if !submitted {
		h.renderIndexPage(w, r, f, http.StatusUnprocessableEntity)
		return
	}

	h.logger.InfoContext(ctx, "link shortened", "link", linkID)

	common.Redirect(w, r, string(commonComp.BaseURL(ctx, commonComp.WithPath("/"), commonComp.WithValues(linkParam, linkID))))
}
