package history

import (
	"regexp"
	"strings"

	"github.com/DDeenis/url-shortener-frontend/internal/form"
	"github.com/pkg/errors"
)

var periodPattern = regexp.MustCompile(`^(` + strings.Join(Periods[1:], "|") + `)?$`)

type filterForm struct {
	*form.Form
	Query     *form.Binding
	DateQuery *form.Binding
}

func newFilterForm() (*filterForm, error) {
	f := form.New(form.Schema{
		"query":     form.KindText,
		"dateQuery": form.KindText,
	})

	bindings, err := f.RegisterMany(
		form.Registration{Field: "query", Options: form.RegisterOptions{
			Validators: []form.Validator{form.Max(2048)},
		}},
		form.Registration{Field: "dateQuery", Options: form.RegisterOptions{
			Validators: []form.Validator{form.Pattern(periodPattern)},
		}},
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &filterForm{
		Form:      f,
		Query:     bindings[0],
		DateQuery: bindings[1],
	}, nil
}
