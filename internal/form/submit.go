package form

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
)

// SubmitFunc receives the values of a valid form.
type SubmitFunc func(ctx context.Context, values Values) error

// SubmitHandler validates the form and submits it when valid. submitted is
// false when the form is invalid and the callback was not called.
type SubmitHandler func(ctx context.Context) (submitted bool, err error)

type submission struct {
	pending atomic.Bool
}

// OnSubmit wraps cb into a handler that validates every field and invokes cb
// with the current values only if the form is valid afterwards.
//
// While cb runs, any other call to the handler fails with ErrSubmitPending.
func (f *Form) OnSubmit(cb SubmitFunc) SubmitHandler {
	return func(ctx context.Context) (bool, error) {
		if !f.submission.pending.CompareAndSwap(false, true) {
			return false, errors.WithStack(ErrSubmitPending)
		}

		defer func() {
			f.submission.pending.Store(false)
			f.notify()
		}()

		f.ValidateAll()

		if !f.IsFormValid() {
			return false, nil
		}

		if err := cb(ctx, f.Values()); err != nil {
			return true, errors.WithStack(err)
		}

		return true, nil
	}
}

// Submitting reports whether a submission callback is running.
func (f *Form) Submitting() bool {
	return f.submission.pending.Load()
}
