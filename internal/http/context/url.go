package context

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

// BaseURL returns the public URL the application is served under. It panics
// when the request did not go through the server handler.
func BaseURL(ctx context.Context) *url.URL {
	baseURL, ok := ctx.Value(keyBaseURL).(*url.URL)
	if !ok {
		panic(errors.New("no base url in context"))
	}

	return baseURL
}

func SetBaseURL(ctx context.Context, baseURL *url.URL) context.Context {
	return context.WithValue(ctx, keyBaseURL, baseURL)
}

// CurrentURL returns the URL of the request as received by the server,
// before any mount prefix is stripped.
func CurrentURL(ctx context.Context) *url.URL {
	currentURL, ok := ctx.Value(keyCurrentURL).(*url.URL)
	if !ok {
		panic(errors.New("no current url in context"))
	}

	return currentURL
}

func SetCurrentURL(ctx context.Context, u *url.URL) context.Context {
	return context.WithValue(ctx, keyCurrentURL, u)
}
