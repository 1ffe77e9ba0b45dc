package metrics

import (
	"context"
	"testing"

	"github.com/DDeenis/url-shortener-frontend/internal/form"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSubmissionResult(t *testing.T) {
	type testCase struct {
		Name     string
		Submit   form.SubmitFunc
		Value    string
		Expected string
	}

	testCases := []testCase{
		{
			Name:     "success",
			Value:    "alice",
			Submit:   func(ctx context.Context, values form.Values) error { return nil },
			Expected: ResultSuccess,
		},
		{
			Name:     "invalid",
			Value:    "",
			Submit:   func(ctx context.Context, values form.Values) error { return nil },
			Expected: ResultInvalid,
		},
		{
			Name:     "error",
			Value:    "alice",
			Submit:   func(ctx context.Context, values form.Values) error { return errors.New("unavailable") },
			Expected: ResultError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			f := form.New(form.Schema{"username": form.KindText})
			if _, err := f.Register("username", form.RegisterOptions{Required: true}); err != nil {
				t.Fatalf("%+v", err)
			}

			if err := f.SetValue("username", tc.Value); err != nil {
				t.Fatalf("%+v", err)
			}

			submitted, err := f.OnSubmit(tc.Submit)(context.Background())

			if got := SubmissionResult(f, submitted, err); got != tc.Expected {
				t.Errorf("expected result '%s', got '%s'", tc.Expected, got)
			}
		})
	}
}

func TestSubmissionResultRejected(t *testing.T) {
	f := form.New(form.Schema{"username": form.KindText})

	if err := f.SetValue("username", "alice"); err != nil {
		t.Fatalf("%+v", err)
	}

	submitted, err := f.OnSubmit(func(ctx context.Context, values form.Values) error {
		return f.SetError("username", form.ValidationError{Type: "username-exist"})
	})(context.Background())

	if got := SubmissionResult(f, submitted, err); got != ResultRejected {
		t.Errorf("expected result '%s', got '%s'", ResultRejected, got)
	}

	before := testutil.ToFloat64(formValidationErrors.WithLabelValues("test", "username", "username-exist"))

	ObserveSubmission("test", f, submitted, err)

	after := testutil.ToFloat64(formValidationErrors.WithLabelValues("test", "username", "username-exist"))
	if after-before != 1 {
		t.Errorf("expected validation error counter to be incremented, got %v", after-before)
	}
}
