package form

import (
	"regexp"
	"testing"
	"time"
)

func TestValidators(t *testing.T) {
	type testCase struct {
		Name          string
		Validator     Validator
		Value         any
		Values        Values
		ExpectedError string
	}

	testCases := []testCase{
		{Name: "required nil", Validator: Required, Value: nil, ExpectedError: TypeRequired},
		{Name: "required empty string", Validator: Required, Value: "", ExpectedError: TypeRequired},
		{Name: "required empty list", Validator: Required, Value: []string{}, ExpectedError: TypeRequired},
		{Name: "required text", Validator: Required, Value: "john"},
		{Name: "required false", Validator: Required, Value: false},
		{Name: "required zero", Validator: Required, Value: float64(0)},

		{Name: "string", Validator: String, Value: "john"},
		{Name: "string number", Validator: String, Value: 12, ExpectedError: TypeString},
		{Name: "number", Validator: Number, Value: 12.5},
		{Name: "number string", Validator: Number, Value: "12", ExpectedError: TypeNumber},
		{Name: "boolean", Validator: Boolean, Value: true},
		{Name: "boolean string", Validator: Boolean, Value: "true", ExpectedError: TypeBoolean},

		{Name: "min length", Validator: Min(3), Value: "abc"},
		{Name: "min length too short", Validator: Min(3), Value: "ab", ExpectedError: TypeMin},
		{Name: "min length runes", Validator: Min(3), Value: "été"},
		{Name: "min value", Validator: Min(10), Value: float64(10)},
		{Name: "min value too low", Validator: Min(10), Value: float64(9), ExpectedError: TypeMin},
		{Name: "min nil", Validator: Min(3), Value: nil},
		{Name: "max length", Validator: Max(3), Value: "abc"},
		{Name: "max length too long", Validator: Max(3), Value: "abcd", ExpectedError: TypeMax},
		{Name: "max value", Validator: Max(10), Value: 10},
		{Name: "max value too high", Validator: Max(10), Value: 11, ExpectedError: TypeMax},

		{Name: "email", Validator: Email, Value: "john@example.com"},
		{Name: "email without domain", Validator: Email, Value: "john@", ExpectedError: TypeEmail},
		{Name: "email empty", Validator: Email, Value: "", ExpectedError: TypeEmail},
		{Name: "email nil", Validator: Email, Value: nil},

		{Name: "url", Validator: URL, Value: "https://example.com/some/path?q=1"},
		{Name: "url http", Validator: URL, Value: "http://www.example.org"},
		{Name: "url without scheme", Validator: URL, Value: "example.com", ExpectedError: TypeURL},
		{Name: "url ftp", Validator: URL, Value: "ftp://example.com", ExpectedError: TypeURL},

		{Name: "pattern", Validator: Pattern(regexp.MustCompile(`^[0-9]+$`)), Value: "123"},
		{Name: "pattern mismatch", Validator: Pattern(regexp.MustCompile(`^[0-9]+$`)), Value: "12a", ExpectedError: TypePattern},

		{
			Name:      "same as",
			Validator: SameAs("password", "passwords-not-match", "Passwords do not match"),
			Value:     "secret",
			Values:    Values{"password": "secret"},
		},
		{
			Name:          "same as mismatch",
			Validator:     SameAs("password", "passwords-not-match", "Passwords do not match"),
			Value:         "secret",
			Values:        Values{"password": "other"},
			ExpectedError: "passwords-not-match",
		},
		{
			Name:          "different from",
			Validator:     DifferentFrom("currentPassword", "passwords-same", "Passwords are the same"),
			Value:         "secret",
			Values:        Values{"currentPassword": "secret"},
			ExpectedError: "passwords-same",
		},
		{
			Name:      "different from other",
			Validator: DifferentFrom("currentPassword", "passwords-same", "Passwords are the same"),
			Value:     "new-secret",
			Values:    Values{"currentPassword": "secret"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			values := tc.Values
			if values == nil {
				values = Values{}
			}

			result := tc.Validator(tc.Value, values)

			if tc.ExpectedError == "" {
				if result != nil {
					t.Errorf("expected no error, got %v", result)
				}
				return
			}

			if result == nil {
				t.Fatalf("expected error '%s', got none", tc.ExpectedError)
			}

			if result.Type != tc.ExpectedError {
				t.Errorf("expected error '%s', got '%s'", tc.ExpectedError, result.Type)
			}

			if result.Message == "" {
				t.Error("expected error message to be set")
			}
		})
	}
}

func TestValidatorsTypeMismatch(t *testing.T) {
	type testCase struct {
		Name      string
		Validator Validator
		Value     any
		Expected  string
	}

	testCases := []testCase{
		{Name: "min boolean", Validator: Min(1), Value: true, Expected: TypeMin},
		{Name: "max date", Validator: Max(1), Value: time.Now(), Expected: TypeMax},
		{Name: "email number", Validator: Email, Value: float64(1), Expected: TypeEmail},
		{Name: "url list", Validator: URL, Value: []string{"https://example.com"}, Expected: TypeURL},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected validator to panic")
				}

				mismatch, ok := r.(*TypeMismatchError)
				if !ok {
					t.Fatalf("expected *TypeMismatchError, got %T", r)
				}

				if mismatch.Validator != tc.Expected {
					t.Errorf("expected validator '%s', got '%s'", tc.Expected, mismatch.Validator)
				}
			}()

			tc.Validator(tc.Value, Values{})
		})
	}
}

func TestMinMaxMessages(t *testing.T) {
	if result := Min(8)("short", Values{}); result == nil || result.Message != "Minimum length is 8" {
		t.Errorf("unexpected min result: %v", result)
	}

	if result := Max(2.5)(float64(3), Values{}); result == nil || result.Message != "Maximum value is 2.5" {
		t.Errorf("unexpected max result: %v", result)
	}
}
