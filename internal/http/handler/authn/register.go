package authn

import (
	"context"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	"github.com/DDeenis/url-shortener-frontend/internal/form"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/authn/component"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/metrics"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	commonComp "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

func (h *Handler) getRegisterPage(w http.ResponseWriter, r *http.Request) {
	f, err := newRegisterForm()
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	h.renderRegisterPage(w, r, f, http.StatusOK)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := newRegisterForm()
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := f.Handle(r); err != nil {
		common.HandleError(w, r, common.BadRequest(err))
		return
	}

	registerURL := string(commonComp.BaseURL(ctx, commonComp.WithPath("/auth/register")))

	submit := f.OnSubmit(h.guard.Wrap(r, "register", func(ctx context.Context, values form.Values) error {
		auth, err := h.client.Register(ctx, api.Registration{
			Username: values.Text("username"),
			Email:    values.Text("email"),
			Password: values.Text("password"),
		})
		if err != nil {
			if errors.Is(err, api.ErrConflict) {
				return f.SetError("username", form.ValidationError{
					Type:    errUsernameExist,
					Message: "Username already exists",
				})
			}

			return errors.WithStack(err)
		}

		if err := h.sessions.SaveUser(w, r, auth); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}))

	submitted, err := submit(ctx)
	metrics.ObserveSubmission("register", f.Form, submitted, err)

	if err != nil {
		if common.IsReplayed(err) {
			common.Flash(w, r, h.sessions, session.FlashInfo, commonComp.T(ctx, "flash.already_submitted"))
			common.Redirect(w, r, registerURL)
			return
		}

		common.FlashError(w, r, h.sessions, err)
		common.Redirect(w, r, registerURL)
		return
	}

	if !submitted || !f.IsFormValid() {
		h.renderRegisterPage(w, r, f, http.StatusUnprocessableEntity)
		return
	}

	h.logger.InfoContext(ctx, "user registered", "username", f.Values().Text("username"))

	common.Flash(w, r, h.sessions, session.FlashSuccess, commonComp.T(ctx, "auth.registered"))
	common.Redirect(w, r, string(commonComp.BaseURL(ctx, commonComp.WithPath("/"))))
}

func (h *Handler) renderRegisterPage(w http.ResponseWriter, r *http.Request, f *registerForm, status int) {
	ctx := r.Context()

	vmodel := component.RegisterPageVModel{
		Token:          h.guard.Token(),
		Username:       f.Username,
		Email:          f.Email,
		Password:       f.Password,
		RepeatPassword: f.RepeatPassword,
	}

	if err := commonComp.FillLayoutVModel(ctx, &vmodel.Layout, r); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel.Layout.Title = commonComp.T(ctx, "auth.register_title")

	templ.Handler(component.RegisterPage(vmodel), templ.WithStatus(status)).ServeHTTP(w, r)
}
