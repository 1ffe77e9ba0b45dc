package form

import (
	"fmt"
	"mime/multipart"
	"reflect"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// Error types produced by the validators of this package.
const (
	TypeRequired = "required"
	TypeMin      = "min"
	TypeMax      = "max"
	TypeEmail    = "email"
	TypeURL      = "url"
	TypePattern  = "pattern"
	TypeString   = "string"
	TypeNumber   = "number"
	TypeBoolean  = "boolean"
	TypeDate     = "date"
	TypeMimeType = "mimetype"
)

var (
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	urlRegex   = regexp.MustCompile(`https?://(www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_+.~#?&/=]*)`)
)

// Required fails when the value is nil, an empty string or an empty list.
func Required(value any, _ Values) *ValidationError {
	if isEmpty(value) {
		return newError(TypeRequired, "Value is required")
	}
	return nil
}

// String fails when the value is not a string.
func String(value any, _ Values) *ValidationError {
	if _, ok := value.(string); !ok {
		return newError(TypeString, "Value should be a string")
	}
	return nil
}

// Number fails when the value is not numeric.
func Number(value any, _ Values) *ValidationError {
	if _, ok := toFloat(value); !ok {
		return newError(TypeNumber, "Value should be a number")
	}
	return nil
}

// Boolean fails when the value is not a boolean.
func Boolean(value any, _ Values) *ValidationError {
	if _, ok := value.(bool); !ok {
		return newError(TypeBoolean, "Value should be a boolean")
	}
	return nil
}

// Min bounds the length of strings and the value of numbers from below.
func Min(n float64) Validator {
	return func(value any, _ Values) *ValidationError {
		if value == nil {
			return nil
		}

		if s, ok := value.(string); ok {
			if float64(utf8.RuneCountInString(s)) >= n {
				return nil
			}
			return newError(TypeMin, fmt.Sprintf("Minimum length is %s", formatNumber(n)))
		}

		if f, ok := toFloat(value); ok {
			if f >= n {
				return nil
			}
			return newError(TypeMin, fmt.Sprintf("Minimum value is %s", formatNumber(n)))
		}

		panic(&TypeMismatchError{Validator: TypeMin, Value: value})
	}
}

// Max bounds the length of strings and the value of numbers from above.
func Max(n float64) Validator {
	return func(value any, _ Values) *ValidationError {
		if value == nil {
			return nil
		}

		if s, ok := value.(string); ok {
			if float64(utf8.RuneCountInString(s)) <= n {
				return nil
			}
			return newError(TypeMax, fmt.Sprintf("Maximum length is %s", formatNumber(n)))
		}

		if f, ok := toFloat(value); ok {
			if f <= n {
				return nil
			}
			return newError(TypeMax, fmt.Sprintf("Maximum value is %s", formatNumber(n)))
		}

		panic(&TypeMismatchError{Validator: TypeMax, Value: value})
	}
}

// Email fails when a string value does not look like an email address.
func Email(value any, _ Values) *ValidationError {
	return matchString(TypeEmail, emailRegex, value, "Email is invalid")
}

// URL fails when a string value does not contain an http(s) URL.
func URL(value any, _ Values) *ValidationError {
	return matchString(TypeURL, urlRegex, value, "URL is invalid")
}

// Pattern fails when a string value does not match re.
func Pattern(re *regexp.Regexp) Validator {
	return func(value any, _ Values) *ValidationError {
		return matchString(TypePattern, re, value, "Value does not match the expected pattern")
	}
}

// SameAs fails when the value differs from the value of the other field.
func SameAs(other string, errType string, message string) Validator {
	return func(value any, values Values) *ValidationError {
		if !reflect.DeepEqual(value, values[other]) {
			return newError(errType, message)
		}
		return nil
	}
}

// DifferentFrom fails when the value equals the value of the other field.
func DifferentFrom(other string, errType string, message string) Validator {
	return func(value any, values Values) *ValidationError {
		if reflect.DeepEqual(value, values[other]) {
			return newError(errType, message)
		}
		return nil
	}
}

func matchString(errType string, re *regexp.Regexp, value any, message string) *ValidationError {
	if value == nil {
		return nil
	}

	s, ok := value.(string)
	if !ok {
		panic(&TypeMismatchError{Validator: errType, Value: value})
	}

	if re.MatchString(s) {
		return nil
	}

	return newError(errType, message)
}

func isEmpty(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case []string:
		return len(typed) == 0
	case []*multipart.FileHeader:
		return len(typed) == 0
	default:
		return false
	}
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
