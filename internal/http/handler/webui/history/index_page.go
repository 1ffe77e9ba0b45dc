package history

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	commonComp "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/history/component"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

func (h *Handler) getIndexPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := newFilterForm()
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := f.Handle(r); err != nil {
		common.HandleError(w, r, common.BadRequest(err))
		return
	}

	f.ValidateAll()

	vmodel := &component.IndexPageVModel{
		Query:      f.Query,
		DateQuery:  f.DateQuery,
		Periods:    Periods,
		Pagination: component.PaginationVModel{Page: 1},
	}

	err = common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillIndexPageLayoutVModel,
	)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if !f.IsFormValid() {
		templ.Handler(component.IndexPage(*vmodel), templ.WithStatus(http.StatusUnprocessableEntity)).ServeHTTP(w, r)
		return
	}

	if err := h.fillIndexPageURLsVModel(ctx, vmodel, r, f); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			h.handleAPIError(w, r, err)
			return
		}

		h.logger.ErrorContext(ctx, "could not list urls", slogx.Error(errors.WithStack(err)))

		vmodel.Layout.Flashes = append(vmodel.Layout.Flashes, session.Flash{
			Level:   session.FlashError,
			Title:   commonComp.T(ctx, "flash.error_title"),
			Message: errorMessage(err),
		})
	}

	templ.Handler(component.IndexPage(*vmodel)).ServeHTTP(w, r)
}

func (h *Handler) fillIndexPageLayoutVModel(ctx context.Context, vmodel *component.IndexPageVModel, r *http.Request) error {
	if err := commonComp.FillLayoutVModel(ctx, &vmodel.Layout, r); err != nil {
		return errors.WithStack(err)
	}

	vmodel.Layout.Title = commonComp.T(ctx, "history.title")

	return nil
}

func (h *Handler) fillIndexPageURLsVModel(ctx context.Context, vmodel *component.IndexPageVModel, r *http.Request, f *filterForm) error {
	values := f.Values()
	pagination := parsePagination(r.URL.Query(), h.pageSize)

	result, err := h.client.ListURLs(ctx, api.ListQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Query:    values.Text("query"),
		After:    After(values.Text("dateQuery"), time.Now()),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Pagination = component.PaginationVModel{
		Page:    pagination.Page,
		HasPrev: pagination.HasPrev(),
		HasNext: result.Meta.HasNext,
	}

	if pagination.HasPrev() {
		vmodel.Pagination.PrevURL = commonComp.CurrentURL(ctx, commonComp.WithQuery(pageQuery(pagination.Page-1)))
	}

	if result.Meta.HasNext {
		vmodel.Pagination.NextURL = commonComp.CurrentURL(ctx, commonComp.WithQuery(pageQuery(pagination.Page+1)))
	}

	vmodel.URLs = make([]component.URLVModel, 0, len(result.Data))
	for _, u := range result.Data {
		vmodel.URLs = append(vmodel.URLs, component.URLVModel{
			ShortURL: u,
			Link:     h.client.ShortLink(u.ID),
			Token:    h.guard.Token(),
		})
	}

	return nil
}

func pageQuery(page int) map[string][]string {
	return map[string][]string{"page": {strconv.Itoa(page)}}
}

func errorMessage(err error) string {
	var userFacingErr common.UserFacingError
	if errors.As(err, &userFacingErr) {
		return userFacingErr.UserMessage()
	}

	return http.StatusText(http.StatusBadGateway)
}
