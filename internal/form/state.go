package form

import "slices"

// State is an immutable snapshot of a form.
type State struct {
	Values     Values
	Errors     map[string][]ValidationError
	Valid      bool
	Submitting bool
}

// Listener receives a fresh snapshot after each mutation of the form.
type Listener func(state State)

type listener struct {
	fn Listener
}

// State returns a snapshot of the form.
func (f *Form) State() State {
	return State{
		Values:     f.values.Clone(),
		Errors:     cloneErrors(f.errors),
		Valid:      f.IsFormValid(),
		Submitting: f.submission.pending.Load(),
	}
}

// Subscribe registers fn to be called after each mutation. The returned
// function removes the subscription.
func (f *Form) Subscribe(fn Listener) (unsubscribe func()) {
	l := &listener{fn: fn}
	f.listeners = append(f.listeners, l)

	return func() {
		f.listeners = slices.DeleteFunc(f.listeners, func(candidate *listener) bool {
			return candidate == l
		})
	}
}

func (f *Form) notify() {
	if len(f.listeners) == 0 {
		return
	}

	state := f.State()
	for _, l := range slices.Clone(f.listeners) {
		l.fn(state)
	}
}
