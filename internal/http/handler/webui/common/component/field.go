package component

import (
	"context"

	"github.com/DDeenis/url-shortener-frontend/internal/form"
	"github.com/a-h/templ"
)

// translatedErrors lists the validation error types having a localized
// message under the "validation" key.
var translatedErrors = map[string]struct{}{
	form.TypeRequired:     {},
	form.TypeEmail:        {},
	form.TypeURL:          {},
	form.TypePattern:      {},
	form.TypeNumber:       {},
	form.TypeDate:         {},
	form.TypeMimeType:     {},
	"passwords-not-match": {},
	"passwords-same":      {},
	"wrong-password":      {},
	"invalid-credentials": {},
	"username-exist":      {},
}

func ErrorMessage(ctx context.Context, err form.ValidationError) string {
	if _, exists := translatedErrors[err.Type]; exists {
		return T(ctx, "validation."+err.Type)
	}

	return err.Message
}

type FieldVModel struct {
	ID          string
	Label       string
	Placeholder string
	// Type overrides the input type derived from the field kind.
	Type    string
	Binding *form.Binding
	Options []FieldOption
}

type FieldOption struct {
	Value string
	Label string
}

func (vmodel FieldVModel) inputID() string {
	if vmodel.ID != "" {
		return vmodel.ID
	}

	return "field-" + vmodel.Binding.Name
}

func (vmodel FieldVModel) selectedValue() string {
	return form.FormatValue(vmodel.Binding.Kind, vmodel.Binding.Value())
}

// attributes returns the attributes of the input or select element bound to
// the field.
func (vmodel FieldVModel) attributes(id string, invalid bool) templ.Attributes {
	attrs := vmodel.Binding.Attrs()
	attrs["id"] = id

	if vmodel.Type != "" {
		attrs["type"] = vmodel.Type
	}

	// Passwords are never sent back to the browser
	if vmodel.Type == "password" {
		delete(attrs, "value")
	}

	if vmodel.Placeholder != "" {
		attrs["placeholder"] = vmodel.Placeholder
	}

	if invalid {
		attrs["aria-invalid"] = "true"
		attrs["aria-describedby"] = id + "-errors"
	}

	if len(vmodel.Options) > 0 {
		delete(attrs, "value")
		delete(attrs, "type")
	}

	return attrs
}

const TokenField = "_token"
