package component

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/DDeenis/url-shortener-frontend/internal/form"
	"github.com/invopop/ctxi18n"

	_ "github.com/DDeenis/url-shortener-frontend/internal/http/i18n"
)

func newLocalizedContext(t *testing.T) context.Context {
	t.Helper()

	ctx, err := ctxi18n.WithLocale(context.Background(), "en")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	return ctx
}

func renderField(t *testing.T, ctx context.Context, vmodel FieldVModel) string {
	t.Helper()

	var buf bytes.Buffer
	if err := Field(vmodel).Render(ctx, &buf); err != nil {
		t.Fatalf("%+v", err)
	}

	return buf.String()
}

func TestFieldErrors(t *testing.T) {
	ctx := newLocalizedContext(t)

	f := form.New(form.Schema{"username": form.KindText})

	binding, err := f.Register("username", form.RegisterOptions{Required: true})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	f.ValidateAll()

	html := renderField(t, ctx, FieldVModel{Label: "Username", Binding: binding})

	for _, expected := range []string{
		`id="field-username"`,
		`aria-invalid="true"`,
		`<li>This field is required</li>`,
	} {
		if !strings.Contains(html, expected) {
			t.Errorf("expected '%s' in %s", expected, html)
		}
	}

	if err := f.SetValue("username", "alice"); err != nil {
		t.Fatalf("%+v", err)
	}

	html = renderField(t, ctx, FieldVModel{Label: "Username", Binding: binding})

	if strings.Contains(html, "aria-invalid") {
		t.Errorf("expected valid field, got %s", html)
	}

	if !strings.Contains(html, `value="alice"`) {
		t.Errorf("expected value to be rendered, got %s", html)
	}
}

func TestFieldPasswordValue(t *testing.T) {
	ctx := newLocalizedContext(t)

	f := form.New(form.Schema{"password": form.KindText}, form.WithDefaultValues(form.Values{"password": "secret"}))

	binding, err := f.Register("password", form.RegisterOptions{Required: true})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	html := renderField(t, ctx, FieldVModel{Type: "password", Binding: binding})

	if strings.Contains(html, "secret") {
		t.Errorf("expected password value not to be rendered, got %s", html)
	}

	if !strings.Contains(html, `type="password"`) {
		t.Errorf("expected password input, got %s", html)
	}
}

func TestFieldOptions(t *testing.T) {
	ctx := newLocalizedContext(t)

	f := form.New(form.Schema{"dateQuery": form.KindText}, form.WithDefaultValues(form.Values{"dateQuery": "last30days"}))

	binding, err := f.Register("dateQuery", form.RegisterOptions{})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	html := renderField(t, ctx, FieldVModel{
		Binding: binding,
		Options: []FieldOption{
			{Value: "last7days", Label: "Last 7 days"},
			{Value: "last30days", Label: "Last 30 days"},
		},
	})

	if !strings.Contains(html, `<option value="last30days" selected>`) {
		t.Errorf("expected selected option, got %s", html)
	}

	if strings.Contains(html, "<input") {
		t.Errorf("expected a select instead of an input, got %s", html)
	}
}

func TestErrorMessage(t *testing.T) {
	ctx := newLocalizedContext(t)

	type testCase struct {
		Name     string
		Error    form.ValidationError
		Expected string
	}

	testCases := []testCase{
		{Name: "translated", Error: form.ValidationError{Type: "username-exist", Message: "Username already exists"}, Expected: "Username already exists"},
		{Name: "translated type", Error: form.ValidationError{Type: form.TypeRequired, Message: "Value is required"}, Expected: "This field is required"},
		{Name: "fallback", Error: form.ValidationError{Type: form.TypeMin, Message: "Minimum length is 8"}, Expected: "Minimum length is 8"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if e, g := tc.Expected, ErrorMessage(ctx, tc.Error); e != g {
				t.Errorf("expected '%s', got '%s'", e, g)
			}
		})
	}
}
