package profile

import (
	"net/http"

	httpCtx "github.com/DDeenis/url-shortener-frontend/internal/http/context"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	commonComp "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/profile/component"
	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

func (h *Handler) getIndexPage(w http.ResponseWriter, r *http.Request) {
	user := httpCtx.User(r.Context())

	details, err := newDetailsForm(user)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	password, err := newPasswordForm()
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	h.renderIndexPage(w, r, details, password, http.StatusOK)
}

func (h *Handler) renderIndexPage(w http.ResponseWriter, r *http.Request, details *detailsForm, password *passwordForm, status int) {
	ctx := r.Context()

	vmodel := component.IndexPageVModel{
		User: httpCtx.User(ctx),
		Details: component.DetailsFormVModel{
			Token:    h.guard.Token(),
			Username: details.Username,
			Email:    details.Email,
		},
		Password: component.PasswordFormVModel{
			Token:             h.guard.Token(),
			CurrentPassword:   password.CurrentPassword,
			NewPassword:       password.NewPassword,
			RepeatNewPassword: password.RepeatNewPassword,
		},
	}

	if err := commonComp.FillLayoutVModel(ctx, &vmodel.Layout, r); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel.Layout.Title = commonComp.T(ctx, "profile.title")

	templ.Handler(component.IndexPage(vmodel), templ.WithStatus(status)).ServeHTTP(w, r)
}

func (h *Handler) indexURL(r *http.Request) string {
	return string(commonComp.BaseURL(r.Context(), commonComp.WithPath("/profile/")))
}
