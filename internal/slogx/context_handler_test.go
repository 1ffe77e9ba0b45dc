package slogx

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestContextHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(ContextHandler{Handler: slog.NewTextHandler(&buf, nil)})

	ctx := WithAttrs(context.Background(), slog.String("visitor", "abc"))
	ctx = WithAttrs(ctx, slog.String("form", "login"))

	logger.InfoContext(ctx, "submitted", Error(errors.New("boom")))

	output := buf.String()

	for _, expected := range []string{"visitor=abc", "form=login", "error=boom"} {
		if !strings.Contains(output, expected) {
			t.Errorf("expected '%s' in output, got '%s'", expected, output)
		}
	}
}

func TestContextHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(ContextHandler{Handler: slog.NewTextHandler(&buf, nil)}).With("component", "authn")

	ctx := WithAttrs(context.Background(), slog.String("user", "alice"))

	logger.InfoContext(ctx, "user logged in")

	output := buf.String()

	for _, expected := range []string{"component=authn", "user=alice"} {
		if !strings.Contains(output, expected) {
			t.Errorf("expected '%s' in output, got '%s'", expected, output)
		}
	}
}

func TestWithAttrsDoesNotAlias(t *testing.T) {
	parent := WithAttrs(context.Background(), slog.String("visitor", "abc"), slog.String("lang", "en"))

	first := WithAttrs(parent, slog.String("form", "login"))
	second := WithAttrs(parent, slog.String("form", "register"))

	firstAttrs := first.Value(slogFields).([]slog.Attr)
	if e, g := "login", firstAttrs[len(firstAttrs)-1].Value.String(); e != g {
		t.Errorf("expected '%s', got '%s'", e, g)
	}

	secondAttrs := second.Value(slogFields).([]slog.Attr)
	if e, g := "register", secondAttrs[len(secondAttrs)-1].Value.String(); e != g {
		t.Errorf("expected '%s', got '%s'", e, g)
	}
}
