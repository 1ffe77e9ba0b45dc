package form

import (
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// dateLayouts are tried in order when extracting a date input.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01",
	"15:04",
}

// InputEvent carries the raw state of an input control after a change.
type InputEvent struct {
	Value   string
	Values  []string
	Checked bool
	Files   []*multipart.FileHeader
}

// Binding ties a registered field to an input control.
type Binding struct {
	Name     string
	Field    string
	Kind     Kind
	Required bool

	form    *Form
	onInput func(value any)
}

// Value returns the current value of the bound field.
func (b *Binding) Value() any {
	value, _ := b.form.Value(b.Field)
	return value
}

// Errors returns the current errors of the bound field.
func (b *Binding) Errors() []ValidationError {
	return b.form.FieldErrors(b.Field)
}

// OnInput extracts a typed value from the event according to the field kind
// and writes it to the form.
func (b *Binding) OnInput(event InputEvent) error {
	value, inputErr := extract(b.Kind, event)

	if err := b.form.setValue(b.Field, value, inputErr); err != nil {
		return err
	}

	if b.onInput != nil {
		b.onInput(value)
	}

	return nil
}

// Attrs returns the attributes to spread onto the input control.
func (b *Binding) Attrs() templ.Attributes {
	attrs := templ.Attributes{
		"name":     b.Name,
		"required": b.Required,
	}

	value := b.Value()

	switch b.Kind {
	case KindBoolean:
		attrs["type"] = b.Kind.InputType()
		attrs["checked"] = value == true
	case KindFile:
		attrs["type"] = b.Kind.InputType()
	case KindList:
		attrs["multiple"] = true
	case KindText:
		attrs["value"] = FormatValue(b.Kind, value)
	default:
		attrs["type"] = b.Kind.InputType()
		attrs["value"] = FormatValue(b.Kind, value)
	}

	return attrs
}

// FormatValue renders a field value the way an input control expects it.
func FormatValue(kind Kind, value any) string {
	if value == nil {
		return ""
	}

	switch kind {
	case KindNumber:
		if n, ok := toFloat(value); ok {
			return formatNumber(n)
		}
	case KindDate:
		if t, ok := value.(time.Time); ok {
			return t.Format(time.DateOnly)
		}
	case KindBoolean:
		if b, ok := value.(bool); ok {
			return strconv.FormatBool(b)
		}
	case KindList:
		if values, ok := value.([]string); ok {
			return strings.Join(values, ",")
		}
	case KindText:
		if s, ok := value.(string); ok {
			return s
		}
	}

	return ""
}

func extract(kind Kind, event InputEvent) (any, *ValidationError) {
	switch kind {
	case KindNumber:
		raw := strings.TrimSpace(event.Value)
		if raw == "" {
			return nil, nil
		}

		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, newError(TypeNumber, "Value should be a number")
		}

		return n, nil

	case KindDate:
		raw := strings.TrimSpace(event.Value)
		if raw == "" {
			return nil, nil
		}

		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, nil
			}
		}

		return nil, newError(TypeDate, "Value should be a date")

	case KindBoolean:
		return event.Checked, nil

	case KindFile:
		if len(event.Files) == 0 {
			return nil, nil
		}
		return event.Files, nil

	case KindList:
		if event.Values == nil {
			return nil, nil
		}
		return append([]string{}, event.Values...), nil

	default:
		return event.Value, nil
	}
}
