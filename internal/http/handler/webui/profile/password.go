package profile

import (
	"context"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	"github.com/DDeenis/url-shortener-frontend/internal/form"
	httpCtx "github.com/DDeenis/url-shortener-frontend/internal/http/context"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/authn"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/metrics"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	commonComp "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
	"github.com/pkg/errors"
)

func (h *Handler) handlePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	password, err := newPasswordForm()
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := password.Handle(r); err != nil {
		common.HandleError(w, r, common.BadRequest(err))
		return
	}

	submit := password.OnSubmit(h.guard.Wrap(r, "profile-password", func(ctx context.Context, values form.Values) error {
		err := h.client.ChangePassword(ctx, api.PasswordChange{
			CurrentPassword: values.Text("currentPassword"),
			NewPassword:     values.Text("newPassword"),
		})
		if err != nil {
			if errors.Is(err, api.ErrConflict) {
				return password.SetError("currentPassword", form.ValidationError{
					Type:    errWrongPassword,
					Message: "Wrong password",
				})
			}

			return errors.WithStack(err)
		}

		return nil
	}))

	submitted, err := submit(ctx)
	metrics.ObserveSubmission("profile-password", password.Form, submitted, err)

	if err != nil {
		if common.IsReplayed(err) {
			common.Flash(w, r, h.sessions, session.FlashInfo, commonComp.T(ctx, "flash.already_submitted"))
			common.Redirect(w, r, h.indexURL(r))
			return
		}

		authn.HandleAPIError(w, r, h.sessions, err, h.indexURL(r))
		return
	}

	if !submitted || !password.IsFormValid() {
		details, err := newDetailsForm(httpCtx.User(ctx))
		if err != nil {
			common.HandleError(w, r, errors.WithStack(err))
			return
		}

		h.renderIndexPage(w, r, details, password, http.StatusUnprocessableEntity)
		return
	}

	h.logger.InfoContext(ctx, "password changed")

	common.Flash(w, r, h.sessions, session.FlashSuccess, commonComp.T(ctx, "profile.password_updated"))
	common.Redirect(w, r, h.indexURL(r))
}
