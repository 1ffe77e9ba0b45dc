package common

import (
	"log/slog"
	"net/http"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	"github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
	"github.com/DDeenis/url-shortener-frontend/internal/slogx"
	"github.com/a-h/templ"
	"github.com/pkg/errors"
)

type HTTPError interface {
	error
	StatusCode() int
}

type UserFacingError interface {
	error
	UserMessage() string
}

func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	vmodel := component.ErrorPageVModel{}

	statusCode := http.StatusInternalServerError

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.StatusCode()
	}

	var apiErr *api.Error
	if httpErr == nil && errors.As(err, &apiErr) {
		statusCode = http.StatusBadGateway
	}

	var userFacingErr UserFacingError
	if errors.As(err, &userFacingErr) {
		vmodel.Message = userFacingErr.UserMessage()
	} else {
		vmodel.Message = http.StatusText(statusCode)
	}

	if httpErr == nil && userFacingErr == nil {
		slog.ErrorContext(ctx, "unexpected error", slogx.ErrorWithStack(errors.WithStack(err)))
	}

	if err := component.FillLayoutVModel(ctx, &vmodel.Layout, r); err != nil {
		slog.ErrorContext(ctx, "could not fill layout", slogx.Error(errors.WithStack(err)))
	}

	errorPage := component.ErrorPage(vmodel)

	templ.Handler(errorPage, templ.WithStatus(statusCode)).ServeHTTP(w, r)
}
