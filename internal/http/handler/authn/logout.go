package authn

import (
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common"
	commonComp "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
	"github.com/pkg/errors"
)

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.sessions.ClearUser(w, r); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	common.Flash(w, r, h.sessions, session.FlashInfo, commonComp.T(ctx, "auth.logged_out"))
	common.Redirect(w, r, string(commonComp.BaseURL(ctx, commonComp.WithPath("/"))))
}
