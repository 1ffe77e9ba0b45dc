package context

type contextKey string

const (
	keyBaseURL    contextKey = "baseURL"
	keyCurrentURL contextKey = "currentURL"
	keyUser       contextKey = "user"
	keyVisitor    contextKey = "visitor"
)
