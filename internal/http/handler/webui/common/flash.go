package common

import (
	"log/slog"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
	"github.com/DDeenis/url-shortener-frontend/internal/http/session"
	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/pkg/errors"
)

// Flash queues a notification for the next rendered page.
func Flash(w http.ResponseWriter, r *http.Request, sessions *session.Store, level string, message string) {
	flash := session.Flash{
		Level:   level,
		Message: message,
	}

	if level == session.FlashError {
		flash.Title = component.T(r.Context(), "flash.error_title")
	}

	if err := sessions.AddFlash(w, r, flash); err != nil {
		slog.ErrorContext(r.Context(), "could not add flash", slogx.Error(errors.WithStack(err)))
	}
}

// FlashError queues a notification describing err. Errors without a message
// meant for the visitor are logged and reported with a generic message.
func FlashError(w http.ResponseWriter, r *http.Request, sessions *session.Store, err error) {
	ctx := r.Context()

	message := http.StatusText(http.StatusInternalServerError)

	var userFacingErr UserFacingError
	if errors.As(err, &userFacingErr) {
		message = userFacingErr.UserMessage()
	} else {
		slog.ErrorContext(ctx, "unexpected error", slogx.ErrorWithStack(errors.WithStack(err)))
	}

	Flash(w, r, sessions, session.FlashError, message)
}
