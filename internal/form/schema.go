package form

import (
	"mime/multipart"
	"time"

	"github.com/pkg/errors"
)

// Kind declares how a field value is represented and how it is extracted from
// an input event.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindDate
	KindBoolean
	KindFile
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindBoolean:
		return "boolean"
	case KindFile:
		return "file"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// InputType returns the HTML input type matching the kind.
func (k Kind) InputType() string {
	switch k {
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindBoolean:
		return "checkbox"
	case KindFile:
		return "file"
	default:
		return "text"
	}
}

// Schema maps field names to their kind. It is fixed for the lifetime of a form.
type Schema map[string]Kind

// Values maps field names to field values. A field present with a nil value
// holds the empty sentinel; an absent field was never set.
type Values map[string]any

// Clone returns a shallow copy of the values. Slices are copied so callers
// cannot mutate the form state through a snapshot.
func (v Values) Clone() Values {
	clone := make(Values, len(v))
	for key, value := range v {
		switch typed := value.(type) {
		case []string:
			clone[key] = append([]string(nil), typed...)
		case []*multipart.FileHeader:
			clone[key] = append([]*multipart.FileHeader(nil), typed...)
		default:
			clone[key] = value
		}
	}
	return clone
}

// Get returns the value of field converted to T. The boolean is false when the
// field is absent, holds the empty sentinel or holds another type.
func Get[T any](values Values, field string) (T, bool) {
	raw, exists := values[field]
	if !exists || raw == nil {
		return *new(T), false
	}

	value, ok := raw.(T)
	if !ok {
		return *new(T), false
	}

	return value, true
}

// Text returns the text value of field or an empty string.
func (v Values) Text(field string) string {
	value, _ := Get[string](v, field)
	return value
}

// Number returns the numeric value of field.
func (v Values) Number(field string) (float64, bool) {
	return Get[float64](v, field)
}

// Bool returns the boolean value of field or false.
func (v Values) Bool(field string) bool {
	value, _ := Get[bool](v, field)
	return value
}

// Time returns the date value of field.
func (v Values) Time(field string) (time.Time, bool) {
	return Get[time.Time](v, field)
}

// Strings returns the list value of field.
func (v Values) Strings(field string) []string {
	value, _ := Get[[]string](v, field)
	return value
}

// Files returns the uploaded files of field.
func (v Values) Files(field string) []*multipart.FileHeader {
	value, _ := Get[[]*multipart.FileHeader](v, field)
	return value
}

// normalize checks that value matches kind and converts integer inputs to
// float64 for number fields.
func normalize(field string, kind Kind, value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch kind {
	case KindText:
		if _, ok := value.(string); ok {
			return value, nil
		}
	case KindNumber:
		if n, ok := toFloat(value); ok {
			return n, nil
		}
	case KindDate:
		if _, ok := value.(time.Time); ok {
			return value, nil
		}
	case KindBoolean:
		if _, ok := value.(bool); ok {
			return value, nil
		}
	case KindFile:
		if files, ok := value.([]*multipart.FileHeader); ok {
			if len(files) == 0 {
				return nil, nil
			}
			return files, nil
		}
	case KindList:
		if _, ok := value.([]string); ok {
			return value, nil
		}
	}

	return nil, errors.WithStack(&KindMismatchError{Field: field, Kind: kind, Value: value})
}
