package form

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnknownField  = errors.New("form: unknown field")
	ErrKindMismatch  = errors.New("form: value does not match field kind")
	ErrSubmitPending = errors.New("form: submission already in progress")
)

// KindMismatchError is returned when a value of the wrong Go type is written
// to a field.
type KindMismatchError struct {
	Field string
	Kind  Kind
	Value any
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("form: field '%s' of kind %s can not hold value of type %T", e.Field, e.Kind, e.Value)
}

func (e *KindMismatchError) Unwrap() error {
	return ErrKindMismatch
}

// TypeMismatchError is the panic value raised by a validator applied to a value
// type it does not support. It signals a programming error, not invalid input.
type TypeMismatchError struct {
	Validator string
	Value     any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("form: validator '%s' can not check value of type %T", e.Validator, e.Value)
}

func unknownField(field string) error {
	return errors.Wrapf(ErrUnknownField, "field '%s'", field)
}
