package api

import (
	"context"
	"net/http"
)

type contextKey string

const contextKeyCookies contextKey = "cookies"

// WithCookies attaches the backend session cookies to the calls made with ctx.
func WithCookies(ctx context.Context, cookies []*http.Cookie) context.Context {
	return context.WithValue(ctx, contextKeyCookies, cookies)
}

func ContextCookies(ctx context.Context) []*http.Cookie {
	cookies, ok := ctx.Value(contextKeyCookies).([]*http.Cookie)
	if !ok {
		return nil
	}

	return cookies
}
