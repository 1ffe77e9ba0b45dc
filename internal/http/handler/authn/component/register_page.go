package component

import (
	"github.com/DDeenis/url-shortener-frontend/internal/form"
	common "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
)

type RegisterPageVModel struct {
	Layout         common.LayoutVModel
	Token          string
	Username       *form.Binding
	Email          *form.Binding
	Password       *form.Binding
	RepeatPassword *form.Binding
}
