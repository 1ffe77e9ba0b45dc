package component

import (
	"github.com/DDeenis/url-shortener-frontend/internal/form"
	common "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
	"github.com/DDeenis/url-shortener-frontend/internal/store"
)

type IndexPageVModel struct {
	Layout      common.LayoutVModel
	Token       string
	OriginalURL *form.Binding
	Result      *store.ShortLink
	RecentLinks []*store.ShortLink
}
