package context

import (
	"context"

	"github.com/DDeenis/url-shortener-frontend/internal/api"
)

// User returns the authenticated user or nil for anonymous visitors.
func User(ctx context.Context) *api.User {
	user, ok := ctx.Value(keyUser).(*api.User)
	if !ok {
		return nil
	}

	return user
}

func SetUser(ctx context.Context, user *api.User) context.Context {
	return context.WithValue(ctx, keyUser, user)
}
