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
	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/pkg/errors"
)

func (h *Handler) handleDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	details, err := newDetailsForm(httpCtx.User(ctx))
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	if err := details.Handle(r); err != nil {
		common.HandleError(w, r, common.BadRequest(err))
		return
	}

	submit := details.OnSubmit(h.guard.Wrap(r, "profile-details", func(ctx context.Context, values form.Values) error {
		profile := api.Profile{
			Username: values.Text("username"),
			Email:    values.Text("email"),
		}

		if err := h.client.UpdateProfile(ctx, profile); err != nil {
			if errors.Is(err, api.ErrConflict) {
				return details.SetError("username", form.ValidationError{
					Type:    errUsernameExist,
					Message: "Username already exists",
				})
			}

			return errors.WithStack(err)
		}

		// The backend already applied the update, a stale session only
		// shows the previous details until the next sign in
		err := h.sessions.UpdateUser(w, r, func(user *api.User) {
			user.Username = profile.Username
			user.Email = profile.Email
		})
		if err != nil {
			h.logger.ErrorContext(ctx, "could not update session user", slogx.Error(errors.WithStack(err)))
		}

		return nil
	}))

	submitted, err := submit(ctx)
	metrics.ObserveSubmission("profile-details", details.Form, submitted, err)

	if err != nil {
		if common.IsReplayed(err) {
			common.Flash(w, r, h.sessions, session.FlashInfo, commonComp.T(ctx, "flash.already_submitted"))
			common.Redirect(w, r, h.indexURL(r))
			return
		}

		authn.HandleAPIError(w, r, h.sessions, err, h.indexURL(r))
		return
	}

	if !submitted || !details.IsFormValid() {
		password, err := newPasswordForm()
		if err != nil {
			common.HandleError(w, r, errors.WithStack(err))
			return
		}

		h.renderIndexPage(w, r, details, password, http.StatusUnprocessableEntity)
		return
	}

	common.Flash(w, r, h.sessions, session.FlashSuccess, commonComp.T(ctx, "profile.details_updated"))
	common.Redirect(w, r, h.indexURL(r))
}
