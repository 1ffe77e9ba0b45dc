package component

import (
	"github.com/DDeenis/url-shortener-frontend/internal/api"
	"github.com/DDeenis/url-shortener-frontend/internal/form"
	common "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
)

type IndexPageVModel struct {
	Layout   common.LayoutVModel
	User     *api.User
	Details  DetailsFormVModel
	Password PasswordFormVModel
}

type DetailsFormVModel struct {
	Token    string
	Username *form.Binding
	Email    *form.Binding
}

type PasswordFormVModel struct {
	Token             string
	CurrentPassword   *form.Binding
	NewPassword       *form.Binding
	RepeatNewPassword *form.Binding
}
