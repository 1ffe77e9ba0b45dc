package form

// FormOptions holds configuration for form behavior
type FormOptions struct {
	// DefaultValues seeds the form values at construction
	DefaultValues Values
	// ResetValidators makes ResetForm also drop registered validators
	ResetValidators bool
	// MaxMemory is the max memory allocated to the parsing of a multipart form
	MaxMemory int64
}

type FormOptionFunc func(opts *FormOptions)

func NewFormOptions(funcs ...FormOptionFunc) *FormOptions {
	opts := &FormOptions{
		DefaultValues: Values{},
		MaxMemory:     32 << 20,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithDefaultValues(values Values) FormOptionFunc {
	return func(opts *FormOptions) {
		opts.DefaultValues = values
	}
}

func WithResetValidators() FormOptionFunc {
	return func(opts *FormOptions) {
		opts.ResetValidators = true
	}
}

func WithMaxMemory(maxMemory int64) FormOptionFunc {
	return func(opts *FormOptions) {
		opts.MaxMemory = maxMemory
	}
}
