package form

import (
	"slices"
	"sort"

	"github.com/pkg/errors"
)

// Form holds the values, validators and errors of a form whose fields are
// declared by a Schema.
//
// A Form belongs to a single rendered form and is not safe for concurrent use.
// Only the submission guard of OnSubmit tolerates concurrent callers.
type Form struct {
	schema Schema
	values Values
	errors map[string][]ValidationError
	// inputErrors holds the last extraction failure of each field, kept until
	// a new value is written
	inputErrors map[string]ValidationError
	validators  map[string][]Validator
	bindings    map[string]*Binding
	order       []string
	listeners   []*listener
	submission  submission
	options     *FormOptions
}

// RegisterOptions configures a field registration.
type RegisterOptions struct {
	// Required appends the Required validator and seeds the empty sentinel
	Required bool
	// Name overrides the wire name of the field (defaults to the field name)
	Name string
	// Validators are run in order on each validation of the field
	Validators []Validator
	// OnInput is called with the extracted value after each input event
	OnInput func(value any)
}

// Registration pairs a field with its options for RegisterMany.
type Registration struct {
	Field   string
	Options RegisterOptions
}

// New creates a form for the given schema. Default values must match the
// schema; a mismatch is a programming error and panics.
func New(schema Schema, funcs ...FormOptionFunc) *Form {
	options := NewFormOptions(funcs...)

	form := &Form{
		schema:      schema,
		values:      make(Values),
		errors:      make(map[string][]ValidationError),
		inputErrors: make(map[string]ValidationError),
		validators:  make(map[string][]Validator),
		bindings:    make(map[string]*Binding),
		options:     options,
	}

	if err := form.setValues(options.DefaultValues); err != nil {
		panic(errors.Wrap(err, "invalid default values"))
	}

	return form
}

// Schema returns the schema the form was created with.
func (f *Form) Schema() Schema {
	return f.schema
}

// Register declares the validators of a field and returns its binding.
// Registering a field again replaces its validators.
func (f *Form) Register(field string, opts RegisterOptions) (*Binding, error) {
	kind, exists := f.schema[field]
	if !exists {
		return nil, unknownField(field)
	}

	validators := make([]Validator, 0, len(opts.Validators)+1)
	validators = append(validators, opts.Validators...)
	if opts.Required {
		validators = append(validators, Required)
	}

	f.validators[field] = validators

	if !slices.Contains(f.order, field) {
		f.order = append(f.order, field)
	}

	if opts.Required {
		if _, exists := f.values[field]; !exists {
			f.values[field] = nil
		}
	}

	name := opts.Name
	if name == "" {
		name = field
	}

	binding := &Binding{
		Name:     name,
		Field:    field,
		Kind:     kind,
		Required: opts.Required,
		form:     f,
		onInput:  opts.OnInput,
	}

	f.bindings[field] = binding

	f.notify()

	return binding, nil
}

// RegisterMany registers each field in order and returns the bindings in the
// same order.
func (f *Form) RegisterMany(registrations ...Registration) ([]*Binding, error) {
	bindings := make([]*Binding, 0, len(registrations))
	for _, r := range registrations {
		binding, err := f.Register(r.Field, r.Options)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		bindings = append(bindings, binding)
	}

	return bindings, nil
}

// Binding returns the binding of a registered field.
func (f *Form) Binding(field string) (*Binding, bool) {
	binding, exists := f.bindings[field]
	return binding, exists
}

// SetValue writes the value of a field and revalidates that field before
// returning.
func (f *Form) SetValue(field string, value any) error {
	return f.setValue(field, value, nil)
}

// setValue writes value and records inputErr as the extraction failure of the
// field, replacing the previous one.
func (f *Form) setValue(field string, value any, inputErr *ValidationError) error {
	kind, exists := f.schema[field]
	if !exists {
		return unknownField(field)
	}

	normalized, err := normalize(field, kind, value)
	if err != nil {
		return errors.WithStack(err)
	}

	f.values[field] = normalized

	if inputErr != nil {
		f.inputErrors[field] = *inputErr
	} else {
		delete(f.inputErrors, field)
	}

	f.validate(field)

	f.notify()

	return nil
}

// SetValues merges values into the form without validating them.
func (f *Form) SetValues(values Values) error {
	if err := f.setValues(values); err != nil {
		return errors.WithStack(err)
	}

	f.notify()

	return nil
}

func (f *Form) setValues(values Values) error {
	normalized := make(Values, len(values))
	for field, value := range values {
		kind, exists := f.schema[field]
		if !exists {
			return unknownField(field)
		}

		v, err := normalize(field, kind, value)
		if err != nil {
			return errors.WithStack(err)
		}

		normalized[field] = v
	}

	for field, value := range normalized {
		f.values[field] = value
		delete(f.inputErrors, field)
	}

	return nil
}

// Value returns the current value of a field. The boolean is false when the
// field was never set.
func (f *Form) Value(field string) (any, bool) {
	value, exists := f.values[field]
	return value, exists
}

// Values returns a snapshot of the current values.
func (f *Form) Values() Values {
	return f.values.Clone()
}

// Validate runs the validators of a field and replaces its errors with the
// results.
func (f *Form) Validate(field string) {
	f.validate(field)
	f.notify()
}

// ValidateAll validates every field holding a value, including the empty
// sentinel. Fields never set are not validated.
func (f *Form) ValidateAll() {
	for _, field := range f.valueFields() {
		f.validate(field)
	}

	f.notify()
}

func (f *Form) validate(field string) {
	if _, exists := f.schema[field]; !exists {
		return
	}

	snapshot := f.values.Clone()
	value := snapshot[field]

	errs := make([]ValidationError, 0)

	// An unparsable input is reported before the validators, which only see
	// the empty sentinel
	if inputErr, exists := f.inputErrors[field]; exists {
		errs = append(errs, inputErr)
	}

	for _, validator := range f.validators[field] {
		if result := validator(value, snapshot); result != nil {
			errs = append(errs, *result)
		}
	}

	f.errors[field] = errs
}

// valueFields lists the fields holding a value, registered fields first.
func (f *Form) valueFields() []string {
	fields := make([]string, 0, len(f.values))
	for _, field := range f.order {
		if _, exists := f.values[field]; exists {
			fields = append(fields, field)
		}
	}

	rest := make([]string, 0)
	for field := range f.values {
		if !slices.Contains(f.order, field) {
			rest = append(rest, field)
		}
	}
	sort.Strings(rest)

	return append(fields, rest...)
}

// SetError appends an externally sourced error to a field unless an error of
// the same type is already present.
func (f *Form) SetError(field string, err ValidationError) error {
	if _, exists := f.schema[field]; !exists {
		return unknownField(field)
	}

	current := f.errors[field]
	if slices.ContainsFunc(current, func(e ValidationError) bool { return e.Type == err.Type }) {
		return nil
	}

	f.errors[field] = append(slices.Clone(current), err)

	f.notify()

	return nil
}

// Errors returns a snapshot of the errors of every validated field.
func (f *Form) Errors() map[string][]ValidationError {
	return cloneErrors(f.errors)
}

// FieldErrors returns the errors of a field.
func (f *Form) FieldErrors(field string) []ValidationError {
	return slices.Clone(f.errors[field])
}

// GetError returns the error of the given type attached to a field.
func (f *Form) GetError(field string, errType string) (ValidationError, bool) {
	for _, err := range f.errors[field] {
		if err.Type == errType {
			return err, true
		}
	}

	return ValidationError{}, false
}

// HasError reports whether a field has an error of the given type.
func (f *Form) HasError(field string, errType string) bool {
	_, exists := f.GetError(field, errType)
	return exists
}

// IsValid reports whether a field has no error. A field never validated is
// valid.
func (f *Form) IsValid(field string) bool {
	return len(f.errors[field]) == 0
}

// IsInvalid reports whether a field has at least one error.
func (f *Form) IsInvalid(field string) bool {
	return !f.IsValid(field)
}

// IsFormValid reports whether every validated field is free of errors.
func (f *Form) IsFormValid() bool {
	for field := range f.errors {
		if !f.IsValid(field) {
			return false
		}
	}

	return true
}

// ResetForm clears values and errors. Validators are kept unless the form was
// created WithResetValidators.
func (f *Form) ResetForm() {
	f.values = make(Values)
	f.errors = make(map[string][]ValidationError)
	f.inputErrors = make(map[string]ValidationError)

	if f.options.ResetValidators {
		f.validators = make(map[string][]Validator)
		f.bindings = make(map[string]*Binding)
		f.order = nil
	}

	f.notify()
}
