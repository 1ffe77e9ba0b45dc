package component

import (
	"context"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
	"github.com/DDeenis/url-shortener-frontend/internal/form"
	common "github.com/DDeenis/url-shortener-frontend/internal/http/handler/webui/common/component"
	"github.com/a-h/templ"
)

type IndexPageVModel struct {
	Layout     common.LayoutVModel
	Query      *form.Binding
	DateQuery  *form.Binding
	Periods    []string
	URLs       []URLVModel
	Pagination PaginationVModel
}

type URLVModel struct {
	api.ShortURL
	Link  string
	Token string
}

type PaginationVModel struct {
	Page    int
	HasPrev bool
	HasNext bool
	PrevURL templ.SafeURL
	NextURL templ.SafeURL
}

func periodOptions(ctx context.Context, periods []string) []common.FieldOption {
	options := make([]common.FieldOption, 0, len(periods))
	for _, p := range periods {
		key := p
		if key == "" {
			key = "any"
		}
		options = append(options, common.FieldOption{Value: p, Label: common.T(ctx, "history.periods."+key)})
	}

	return options
}
