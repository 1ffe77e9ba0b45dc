package form

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHasFileFields(t *testing.T) {
	withFile := New(Schema{"name": KindText, "document": KindFile})
	if _, err := withFile.Register("document", RegisterOptions{}); err != nil {
		t.Fatalf("%+v", err)
	}
	if !withFile.hasFileFields() {
		t.Error("Expected hasFileFields to return true for a registered file field")
	}

	withoutFile := New(Schema{"name": KindText, "document": KindFile})
	if _, err := withoutFile.Register("name", RegisterOptions{}); err != nil {
		t.Fatalf("%+v", err)
	}
	if withoutFile.hasFileFields() {
		t.Error("Expected hasFileFields to return false without registered file field")
	}
}

func TestHandleMultipartForm(t *testing.T) {
	// Create a multipart form with file upload
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	writer.WriteField("name", "John Doe")

	fileWriter, err := writer.CreateFormFile("document", "test.txt")
	if err != nil {
		t.Fatal(err)
	}
	fileWriter.Write([]byte("test file content"))

	writer.Close()

	req := httptest.NewRequest("POST", "/test", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	form := New(Schema{"name": KindText, "document": KindFile})

	_, err = form.RegisterMany(
		Registration{Field: "name", Options: RegisterOptions{Required: true}},
		Registration{Field: "document", Options: RegisterOptions{
			Required:   true,
			Validators: []Validator{MimeType("text/plain")},
		}},
	)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if err := form.Handle(req); err != nil {
		t.Fatalf("Expected no error, got: %+v", err)
	}

	values := form.Values()

	if got := values.Text("name"); got != "John Doe" {
		t.Errorf("Expected name 'John Doe', got '%s'", got)
	}

	files := values.Files("document")
	if len(files) != 1 {
		t.Fatalf("Expected 1 file, got %d", len(files))
	}
	if files[0].Filename != "test.txt" {
		t.Errorf("Expected document 'test.txt', got '%s'", files[0].Filename)
	}

	if !form.IsFormValid() {
		t.Errorf("Expected form to be valid, got %v", form.Errors())
	}
}

func TestHandleRejectsMimeType(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fileWriter, err := writer.CreateFormFile("document", "image.png")
	if err != nil {
		t.Fatal(err)
	}
	fileWriter.Write([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"))

	writer.Close()

	req := httptest.NewRequest("POST", "/test", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	form := New(Schema{"document": KindFile})

	if _, err := form.Register("document", RegisterOptions{Validators: []Validator{MimeType("text/plain")}}); err != nil {
		t.Fatalf("%+v", err)
	}

	if err := form.Handle(req); err != nil {
		t.Fatalf("Expected no error, got: %+v", err)
	}

	if !form.HasError("document", TypeMimeType) {
		t.Errorf("Expected mimetype error, got %v", form.FieldErrors("document"))
	}
}

func TestHandleURLEncodedForm(t *testing.T) {
	formData := "name=Jane+Doe&email=jane%40example.com&age=42&birth=1990-02-01&newsletter=false&newsletter=on&tags=a&tags=b"
	req := httptest.NewRequest("POST", "/test", strings.NewReader(formData))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form := New(Schema{
		"name":       KindText,
		"email":      KindText,
		"age":        KindNumber,
		"birth":      KindDate,
		"newsletter": KindBoolean,
		"tags":       KindList,
	})

	_, err := form.RegisterMany(
		Registration{Field: "name", Options: RegisterOptions{Required: true}},
		Registration{Field: "email", Options: RegisterOptions{Required: true, Validators: []Validator{Email}}},
		Registration{Field: "age", Options: RegisterOptions{Validators: []Validator{Min(18)}}},
		Registration{Field: "birth"},
		Registration{Field: "newsletter"},
		Registration{Field: "tags"},
	)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if err := form.Handle(req); err != nil {
		t.Fatalf("Expected no error, got: %+v", err)
	}

	values := form.Values()

	if got := values.Text("name"); got != "Jane Doe" {
		t.Errorf("Expected name 'Jane Doe', got '%s'", got)
	}
	if got := values.Text("email"); got != "jane@example.com" {
		t.Errorf("Expected email 'jane@example.com', got '%s'", got)
	}
	if got, _ := values.Number("age"); got != 42 {
		t.Errorf("Expected age 42, got %v", got)
	}
	if got, _ := values.Time("birth"); !got.Equal(time.Date(1990, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected birth 1990-02-01, got %v", got)
	}
	if !values.Bool("newsletter") {
		t.Error("Expected newsletter to be checked")
	}
	if got := values.Strings("tags"); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Expected tags [a b], got %v", got)
	}

	if !form.IsFormValid() {
		t.Errorf("Expected form to be valid, got %v", form.Errors())
	}
}

func TestHandleInvalidNumber(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", strings.NewReader("age=abc"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form := New(Schema{"age": KindNumber})

	if _, err := form.Register("age", RegisterOptions{}); err != nil {
		t.Fatalf("%+v", err)
	}

	if err := form.Handle(req); err != nil {
		t.Fatalf("Expected no error, got: %+v", err)
	}

	if !form.HasError("age", TypeNumber) {
		t.Errorf("Expected number error, got %v", form.FieldErrors("age"))
	}

	if value, _ := form.Value("age"); value != nil {
		t.Errorf("Expected empty sentinel, got %v", value)
	}
}

func TestHandleCustomName(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", strings.NewReader("original_url=https%3A%2F%2Fexample.com"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form := New(Schema{"originalUrl": KindText})

	if _, err := form.Register("originalUrl", RegisterOptions{Name: "original_url", Required: true, Validators: []Validator{URL}}); err != nil {
		t.Fatalf("%+v", err)
	}

	if err := form.Handle(req); err != nil {
		t.Fatalf("Expected no error, got: %+v", err)
	}

	if got := form.Values().Text("originalUrl"); got != "https://example.com" {
		t.Errorf("Expected 'https://example.com', got '%s'", got)
	}
}

func TestHandleInvalidNumberBlocksSubmit(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", strings.NewReader("age=abc&birthday=someday"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form := New(Schema{"age": KindNumber, "birthday": KindDate})

	if _, err := form.RegisterMany(
		Registration{Field: "age"},
		Registration{Field: "birthday"},
	); err != nil {
		t.Fatalf("%+v", err)
	}

	if err := form.Handle(req); err != nil {
		t.Fatalf("Expected no error, got: %+v", err)
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
		t.Errorf("Expected unparsable inputs to block the submission, got values %v", form.Values())
	}

	if !form.HasError("age", TypeNumber) {
		t.Errorf("Expected number error after submit, got %v", form.FieldErrors("age"))
	}

	if !form.HasError("birthday", TypeDate) {
		t.Errorf("Expected date error after submit, got %v", form.FieldErrors("birthday"))
	}

	// A new value replaces the unparsable input
	if err := form.SetValue("age", 42); err != nil {
		t.Fatalf("%+v", err)
	}

	if !form.IsValid("age") {
		t.Errorf("Expected age to be valid, got %v", form.FieldErrors("age"))
	}

	birthday, exists := form.Binding("birthday")
	if !exists {
		t.Fatal("Expected birthday binding")
	}

	if err := birthday.OnInput(InputEvent{Value: "2024-05-01"}); err != nil {
		t.Fatalf("%+v", err)
	}

	submitted, err = submit(context.Background())
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if !submitted || !called {
		t.Errorf("Expected the form to be submitted, got errors %v", form.Errors())
	}
}
