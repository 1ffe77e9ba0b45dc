package context

import (
	"context"
)

// Visitor returns the identifier of the browser session, shared by anonymous
// and authenticated visitors.
func Visitor(ctx context.Context) string {
	visitor, ok := ctx.Value(keyVisitor).(string)
	if !ok {
		return ""
	}

	return visitor
}

func SetVisitor(ctx context.Context, visitor string) context.Context {
	return context.WithValue(ctx, keyVisitor, visitor)
}
