package component

import (
	"github.com/DDeenis/url-shortener-frontend/internal/form"
	common "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
)

type LoginPageVModel struct {
	Layout   common.LayoutVModel
	Token    string
	Username *form.Binding
	Password *form.Binding
}
