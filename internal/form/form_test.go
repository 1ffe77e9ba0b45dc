package form

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestRegisterRequiredSeedsEmptyValue(t *testing.T) {
	form := New(Schema{"name": KindText})

	if _, err := form.Register("name", RegisterOptions{Required: true}); err != nil {
		t.Fatalf("%+v", err)
	}

	value, exists := form.Value("name")
	if !exists {
		t.Fatal("expected required field to hold the empty sentinel")
	}
	if value != nil {
		t.Errorf("expected nil sentinel, got %v", value)
	}

	form.ValidateAll()

	if !form.HasError("name", TypeRequired) {
		t.Errorf("expected required error, got %v", form.FieldErrors("name"))
	}
	if form.IsFormValid() {
		t.Error("expected form to be invalid")
	}
}

func TestRegisterKeepsExistingValue(t *testing.T) {
	form := New(Schema{"name": KindText}, WithDefaultValues(Values{"name": "John"}))

	if _, err := form.Register("name", RegisterOptions{Required: true}); err != nil {
		t.Fatalf("%+v", err)
	}

	if got := form.Values().Text("name"); got != "John" {
		t.Errorf("expected default value to be kept, got '%s'", got)
	}
}

func TestRegisterUnknownField(t *testing.T) {
	form := New(Schema{"name": KindText})

	_, err := form.Register("email", RegisterOptions{})
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestValidateAllSkipsUnsetFields(t *testing.T) {
	form := New(Schema{"name": KindText, "nickname": KindText})

	if _, err := form.Register("nickname", RegisterOptions{Validators: []Validator{Min(3)}}); err != nil {
		t.Fatalf("%+v", err)
	}

	form.ValidateAll()

	if _, exists := form.Errors()["nickname"]; exists {
		t.Error("expected field never set to be left out of validation")
	}
	if !form.IsFormValid() {
		t.Error("expected form without validated fields to be valid")
	}
}

func TestValidatorsOrder(t *testing.T) {
	form := New(Schema{"code": KindText})

	_, err := form.Register("code", RegisterOptions{
		Required: true,
		Validators: []Validator{
			Min(5),
			Pattern(regexp.MustCompile(`^[a-z]+$`)),
		},
	})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if err := form.SetValue("code", "AB"); err != nil {
		t.Fatalf("%+v", err)
	}

	expected := []ValidationError{
		{Type: TypeMin, Message: "Minimum length is 5"},
		{Type: TypePattern, Message: "Value does not match the expected pattern"},
	}

	if diff := cmp.Diff(expected, form.FieldErrors("code")); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}

	if err := form.SetValue("code", ""); err != nil {
		t.Fatalf("%+v", err)
	}

	expected = []ValidationError{
		{Type: TypeMin, Message: "Minimum length is 5"},
		{Type: TypePattern, Message: "Value does not match the expected pattern"},
		{Type: TypeRequired, Message: "Value is required"},
	}

	if diff := cmp.Diff(expected, form.FieldErrors("code")); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestSetValueReplacesErrors(t *testing.T) {
	form := New(Schema{"name": KindText})

	if _, err := form.Register("name", RegisterOptions{Required: true}); err != nil {
		t.Fatalf("%+v", err)
	}

	form.ValidateAll()
	if form.IsValid("name") {
		t.Fatal("expected name to be invalid")
	}

	if err := form.SetValue("name", "John"); err != nil {
		t.Fatalf("%+v", err)
	}

	if !form.IsValid("name") {
		t.Errorf("expected name to be valid, got %v", form.FieldErrors("name"))
	}
}

func TestSetValueKindMismatch(t *testing.T) {
	form := New(Schema{"age": KindNumber})

	err := form.SetValue("age", "twelve")
	if !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("expected ErrKindMismatch, got %v", err)
	}

	var mismatch *KindMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *KindMismatchError, got %T", err)
	}
	if mismatch.Field != "age" {
		t.Errorf("expected field 'age', got '%s'", mismatch.Field)
	}

	if _, exists := form.Value("age"); exists {
		t.Error("expected rejected value not to be written")
	}
}

func TestSetValueNormalizesNumbers(t *testing.T) {
	form := New(Schema{"age": KindNumber})

	if err := form.SetValue("age", 12); err != nil {
		t.Fatalf("%+v", err)
	}

	value, _ := form.Value("age")
	if value != float64(12) {
		t.Errorf("expected float64(12), got %T(%v)", value, value)
	}
}

func TestSetErrorIsIdempotent(t *testing.T) {
	form := New(Schema{"username": KindText})

	conflict := ValidationError{Type: "username-exist", Message: "Username already exists"}

	for i := 0; i < 3; i++ {
		if err := form.SetError("username", conflict); err != nil {
			t.Fatalf("%+v", err)
		}
	}

	if diff := cmp.Diff([]ValidationError{conflict}, form.FieldErrors("username")); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}

	if err := form.SetError("username", ValidationError{Type: "reserved"}); err != nil {
		t.Fatalf("%+v", err)
	}

	if got := len(form.FieldErrors("username")); got != 2 {
		t.Errorf("expected 2 errors, got %d", got)
	}
}

func TestSetErrorUnknownField(t *testing.T) {
	form := New(Schema{"username": KindText})

	err := form.SetError("email", ValidationError{Type: "email-exist"})
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestOnSubmitSkipsInvalidForm(t *testing.T) {
	form := New(Schema{"username": KindText})

	if _, err := form.Register("username", RegisterOptions{Required: true}); err != nil {
		t.Fatalf("%+v", err)
	}

	called := false
	submit := form.OnSubmit(func(ctx context.Context, values Values) error {
		called = true
		return nil
	})

	submitted, err := submit(context.Background())
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if submitted || called {
		t.Error("expected callback not to be called on an invalid form")
	}
	if !form.HasError("username", TypeRequired) {
		t.Error("expected submission to validate every field")
	}
}

func TestOnSubmitReturnsCallbackError(t *testing.T) {
	form := New(Schema{"username": KindText})

	if err := form.SetValue("username", "alice"); err != nil {
		t.Fatalf("%+v", err)
	}

	failure := errors.New("backend unavailable")

	submitted, err := form.OnSubmit(func(ctx context.Context, values Values) error {
		return failure
	})(context.Background())

	if !submitted {
		t.Error("expected callback to be called")
	}
	if !errors.Is(err, failure) {
		t.Errorf("expected callback error, got %v", err)
	}
	if form.Submitting() {
		t.Error("expected submission guard to be released")
	}
}

func TestOnSubmitRejectsConcurrentSubmission(t *testing.T) {
	form := New(Schema{"username": KindText})

	if err := form.SetValue("username", "alice"); err != nil {
		t.Fatalf("%+v", err)
	}

	var (
		submit SubmitHandler
		nested error
		calls  int
	)

	submit = form.OnSubmit(func(ctx context.Context, values Values) error {
		calls++
		if !form.Submitting() {
			t.Error("expected form to be submitting")
		}
		_, nested = submit(ctx)
		return nil
	})

	if _, err := submit(context.Background()); err != nil {
		t.Fatalf("%+v", err)
	}

	if !errors.Is(nested, ErrSubmitPending) {
		t.Errorf("expected ErrSubmitPending, got %v", nested)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}

	if _, err := submit(context.Background()); err != nil {
		t.Fatalf("%+v", err)
	}
	if calls != 2 {
		t.Errorf("expected guard to be released after submission, got %d calls", calls)
	}
}

func TestResetForm(t *testing.T) {
	type testCase struct {
		Name               string
		Options            []FormOptionFunc
		ExpectedValidators bool
	}

	testCases := []testCase{
		{Name: "keep validators", ExpectedValidators: true},
		{Name: "reset validators", Options: []FormOptionFunc{WithResetValidators()}, ExpectedValidators: false},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			form := New(Schema{"name": KindText}, tc.Options...)

			if _, err := form.Register("name", RegisterOptions{Required: true}); err != nil {
				t.Fatalf("%+v", err)
			}

			form.ValidateAll()
			form.ResetForm()

			if len(form.Values()) != 0 {
				t.Errorf("expected no values, got %v", form.Values())
			}
			if len(form.Errors()) != 0 {
				t.Errorf("expected no errors, got %v", form.Errors())
			}

			if err := form.SetValue("name", ""); err != nil {
				t.Fatalf("%+v", err)
			}

			if got := form.HasError("name", TypeRequired); got != tc.ExpectedValidators {
				t.Errorf("expected required validator kept = %v, got %v", tc.ExpectedValidators, got)
			}

			if _, exists := form.Binding("name"); exists != tc.ExpectedValidators {
				t.Errorf("expected binding kept = %v, got %v", tc.ExpectedValidators, exists)
			}
		})
	}
}

func TestSubscribe(t *testing.T) {
	form := New(Schema{"name": KindText})

	states := make([]State, 0)
	unsubscribe := form.Subscribe(func(state State) {
		states = append(states, state)
	})

	if err := form.SetValue("name", "John"); err != nil {
		t.Fatalf("%+v", err)
	}

	if len(states) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(states))
	}
	if got := states[0].Values.Text("name"); got != "John" {
		t.Errorf("expected snapshot value 'John', got '%s'", got)
	}
	if !states[0].Valid {
		t.Error("expected snapshot to be valid")
	}

	unsubscribe()

	if err := form.SetValue("name", "Jane"); err != nil {
		t.Fatalf("%+v", err)
	}

	if len(states) != 1 {
		t.Errorf("expected no notification after unsubscribe, got %d", len(states))
	}
}

func TestNewPanicsOnInvalidDefaults(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected New to panic")
		}
	}()

	New(Schema{"name": KindText}, WithDefaultValues(Values{"age": 12}))
}
