package form

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Handle parses a form submission and feeds each registered binding with the
// input found under its wire name.
func (f *Form) Handle(r *http.Request) error {
	// Check if we have file fields and use appropriate parsing method
	if f.hasFileFields() {
		if err := r.ParseMultipartForm(f.options.MaxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return errors.Wrap(err, "failed to parse multipart form")
		}
	}

	if err := r.ParseForm(); err != nil {
		return errors.Wrap(err, "failed to parse form")
	}

	for _, field := range f.order {
		binding := f.bindings[field]

		event := InputEvent{
			Value:   r.Form.Get(binding.Name),
			Values:  r.Form[binding.Name],
			Checked: isChecked(r.Form, binding.Name),
		}

		if binding.Kind == KindFile && r.MultipartForm != nil {
			event.Files = r.MultipartForm.File[binding.Name]
		}

		if err := binding.OnInput(event); err != nil {
			return errors.Wrapf(err, "could not handle input of field '%s'", field)
		}
	}

	return nil
}

// isChecked interprets checkbox values, honoring the hidden "false" input
// placed before a checkbox.
func isChecked(values url.Values, name string) bool {
	submitted := values[name]
	if len(submitted) == 0 {
		return false
	}

	switch strings.ToLower(submitted[len(submitted)-1]) {
	case "", "off", "false", "0":
		return false
	default:
		return true
	}
}
