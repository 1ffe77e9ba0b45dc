package form

// ValidationError describes why a field value is invalid. Type is a machine
// readable kind (ie "required", "email", "username-exist"), Message is meant for
// humans.
type ValidationError struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Message == "" {
		return e.Type
	}
	return e.Message
}

// Validator checks a candidate value against the full values snapshot and
// returns nil when the value is acceptable.
type Validator func(value any, values Values) *ValidationError

func newError(errType, message string) *ValidationError {
	return &ValidationError{Type: errType, Message: message}
}

func cloneErrors(src map[string][]ValidationError) map[string][]ValidationError {
	out := make(map[string][]ValidationError, len(src))
	for field, errs := range src {
		out[field] = append([]ValidationError{}, errs...)
	}
	return out
}
