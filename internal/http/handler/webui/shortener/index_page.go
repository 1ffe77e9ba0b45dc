package shortener

import (
	"context"
	"net/http"

	httpCtx "github.com/DDeenis/url-shortener-frontend/internal/http/context"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	commonComp "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/shortener/component"
	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

// linkParam holds the identifier of the link shortened by the last
// submission.
const linkParam = "link"

func (h *Handler) getIndexPage(w http.ResponseWriter, r *http.Request) {
	f, err := newShortenForm()
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	h.renderIndexPage(w, r, f, http.StatusOK)
}

func (h *Handler) renderIndexPage(w http.ResponseWriter, r *http.Request, f *shortenForm, status int) {
	vmodel, err := h.fillIndexPageViewModel(r, f)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	templ.Handler(component.IndexPage(*vmodel), templ.WithStatus(status)).ServeHTTP(w, r)
}

func (h *Handler) fillIndexPageViewModel(r *http.Request, f *shortenForm) (*component.IndexPageVModel, error) {
	vmodel := &component.IndexPageVModel{
		Token:       h.guard.Token(),
		OriginalURL: f.OriginalURL,
	}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillIndexPageLayoutVModel,
		h.fillIndexPageLinksVModel,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillIndexPageLayoutVModel(ctx context.Context, vmodel *component.IndexPageVModel, r *http.Request) error {
	if err := commonComp.FillLayoutVModel(ctx, &vmodel.Layout, r); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (h *Handler) fillIndexPageLinksVModel(ctx context.Context, vmodel *component.IndexPageVModel, r *http.Request) error {
	visitor := httpCtx.Visitor(ctx)
	if visitor == "" {
		return nil
	}

	links, err := h.links.ListRecent(ctx, visitor, h.recentLinks)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.RecentLinks = links

	// Only links shortened by the visitor are highlighted
	if linkID := r.URL.Query().Get(linkParam); linkID != "" {
		for _, l := range links {
			if l.LinkID == linkID {
				vmodel.Result = l
				break
			}
		}
	}

	return nil
}
