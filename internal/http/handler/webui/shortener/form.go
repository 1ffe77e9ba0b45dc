package shortener

import (
	"github.com/DDeenis/url-shortener-frontend/internal/form"
	"github.com/pkg/errors"
)

const maxURLLength = 2048

type shortenForm struct {
	*form.Form
	OriginalURL *form.Binding
}

func newShortenForm() (*shortenForm, error) {
	f := form.New(form.Schema{
		"originalUrl": form.KindText,
	})

	originalURL, err := f.Register("originalUrl", form.RegisterOptions{
		Required:   true,
		Validators: []form.Validator{form.URL, form.Max(maxURLLength)},
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &shortenForm{
		Form:        f,
		OriginalURL: originalURL,
	}, nil
}
