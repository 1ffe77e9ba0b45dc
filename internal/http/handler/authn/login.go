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

func (h *Handler) getLoginPage(w http.ResponseWriter, r *http.Request) {
	f, err := newLoginForm()
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	h.renderLoginPage(w, r, f, http.StatusOK)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := newLoginForm()
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := f.Handle(r); err != nil {
		common.HandleError(w, r, common.BadRequest(err))
		return
	}

	var username string

	submit := f.OnSubmit(h.guard.Wrap(r, "login", func(ctx context.Context, values form.Values) error {
		auth, err := h.client.Login(ctx, api.Credentials{
			Username: values.Text("username"),
			Password: values.Text("password"),
		})
		if err != nil {
			if errors.Is(err, api.ErrUnauthorized) {
				return f.SetError("password", form.ValidationError{
					Type:    errInvalidCredentials,
					Message: "Invalid username or password",
				})
			}

			return errors.WithStack(err)
		}

		if err := h.sessions.SaveUser(w, r, auth); err != nil {
			return errors.WithStack(err)
		}

		username = auth.User.Username

		return nil
	}))

	submitted, err := submit(ctx)
	metrics.ObserveSubmission("login", f.Form, submitted, err)

	if err != nil {
		if common.IsReplayed(err) {
			common.Flash(w, r, h.sessions, session.FlashInfo, commonComp.T(ctx, "flash.already_submitted"))
			common.Redirect(w, r, string(loginURL(r)))
			return
		}

		common.FlashError(w, r, h.sessions, err)
		common.Redirect(w, r, string(loginURL(r)))
		return
	}

	if !submitted || !f.IsFormValid() {
		h.renderLoginPage(w, r, f, http.StatusUnprocessableEntity)
		return
	}

	h.logger.InfoContext(ctx, "user logged in", "username", username)

	common.Flash(w, r, h.sessions, session.FlashSuccess, commonComp.T(ctx, "auth.welcome"))
	common.Redirect(w, r, string(commonComp.BaseURL(ctx, commonComp.WithPath("/"))))
}

func (h *Handler) renderLoginPage(w http.ResponseWriter, r *http.Request, f *loginForm, status int) {
	ctx := r.Context()

	vmodel := component.LoginPageVModel{
		Token:    h.guard.Token(),
		Username: f.Username,
		Password: f.Password,
	}

	if err := commonComp.FillLayoutVModel(ctx, &vmodel.Layout, r); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel.Layout.Title = commonComp.T(ctx, "auth.login_title")

	templ.Handler(component.LoginPage(vmodel), templ.WithStatus(status)).ServeHTTP(w, r)
}

func loginURL(r *http.Request) templ.SafeURL {
	return commonComp.BaseURL(r.Context(), commonComp.WithPath("/auth/login"))
}
