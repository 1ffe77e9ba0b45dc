package form

import (
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
)

func TestBindingRoundTrip(t *testing.T) {
	type testCase struct {
		Name     string
		Kind     Kind
		Event    InputEvent
		Expected any
	}

	testCases := []testCase{
		{Name: "text", Kind: KindText, Event: InputEvent{Value: "hello"}, Expected: "hello"},
		{Name: "empty text", Kind: KindText, Event: InputEvent{Value: ""}, Expected: ""},
		{Name: "number", Kind: KindNumber, Event: InputEvent{Value: " 12.5 "}, Expected: 12.5},
		{Name: "empty number", Kind: KindNumber, Event: InputEvent{Value: ""}, Expected: nil},
		{Name: "date", Kind: KindDate, Event: InputEvent{Value: "2024-03-01"}, Expected: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "datetime", Kind: KindDate, Event: InputEvent{Value: "2024-03-01T10:30"}, Expected: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)},
		{Name: "checked", Kind: KindBoolean, Event: InputEvent{Checked: true}, Expected: true},
		{Name: "unchecked", Kind: KindBoolean, Event: InputEvent{}, Expected: false},
		{Name: "list", Kind: KindList, Event: InputEvent{Values: []string{"a", "b"}}, Expected: []string{"a", "b"}},
		{Name: "empty file", Kind: KindFile, Event: InputEvent{}, Expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			form := New(Schema{"field": tc.Kind})

			var received any
			binding, err := form.Register("field", RegisterOptions{
				OnInput: func(value any) { received = value },
			})
			if err != nil {
				t.Fatalf("%+v", err)
			}

			if err := binding.OnInput(tc.Event); err != nil {
				t.Fatalf("%+v", err)
			}

			if diff := cmp.Diff(tc.Expected, binding.Value()); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tc.Expected, received); diff != "" {
				t.Errorf("callback value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBindingReflectsExternalWrites(t *testing.T) {
	form := New(Schema{"name": KindText})

	binding, err := form.Register("name", RegisterOptions{})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if err := form.SetValue("name", "John"); err != nil {
		t.Fatalf("%+v", err)
	}

	if binding.Value() != "John" {
		t.Errorf("expected binding to read 'John', got %v", binding.Value())
	}
}

func TestBindingAttrs(t *testing.T) {
	type testCase struct {
		Name     string
		Kind     Kind
		Required bool
		Value    any
		Expected templ.Attributes
	}

	testCases := []testCase{
		{
			Name:     "text",
			Kind:     KindText,
			Required: true,
			Value:    "John",
			Expected: templ.Attributes{"name": "field", "required": true, "value": "John"},
		},
		{
			Name:     "number",
			Kind:     KindNumber,
			Value:    float64(3),
			Expected: templ.Attributes{"name": "field", "required": false, "type": "number", "value": "3"},
		},
		{
			Name:     "date",
			Kind:     KindDate,
			Value:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Expected: templ.Attributes{"name": "field", "required": false, "type": "date", "value": "2024-03-01"},
		},
		{
			Name:     "checkbox",
			Kind:     KindBoolean,
			Value:    true,
			Expected: templ.Attributes{"name": "field", "required": false, "type": "checkbox", "checked": true},
		},
		{
			Name:     "file",
			Kind:     KindFile,
			Expected: templ.Attributes{"name": "field", "required": false, "type": "file"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			form := New(Schema{"field": tc.Kind})

			binding, err := form.Register("field", RegisterOptions{Required: tc.Required})
			if err != nil {
				t.Fatalf("%+v", err)
			}

			if tc.Value != nil {
				if err := form.SetValue("field", tc.Value); err != nil {
					t.Fatalf("%+v", err)
				}
			}

			if diff := cmp.Diff(tc.Expected, binding.Attrs()); diff != "" {
				t.Errorf("attributes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
