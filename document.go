package argvalidation

type (
	// Predicate reports whether value is acceptable.
	Predicate[T any] func(value T) bool

	// Text is the set of types accepted by the text validators. A nil *string
	// is treated as absent text.
	Text interface {
		~string | *string
	}

	// Argument is a validation target: a value together with the name of the
	// parameter it came from. A nil *Argument is an absent target and is never
	// validated.
	Argument[T any] struct {
		name  string
		value func() T
		err   error
	}
)

// Arg returns a target for value named name. The value is captured now.
func Arg[T any](name string, value T) *Argument[T] {
	return &Argument[T]{
		name:  name,
		value: func() T { return value },
	}
}

// Ref returns a target named name that reads *ptr when validated.
// A nil ptr yields an absent target.
func Ref[T any](name string, ptr *T) *Argument[T] {
	if ptr == nil {
		return nil
	}
	return &Argument[T]{
		name:  name,
		value: func() T { return *ptr },
	}
}

// Name returns the parameter name reported on failure.
func (a *Argument[T]) Name() string {
	if a == nil {
		return ""
	}
	return a.name
}

// Value returns the current value of the target, or the zero value for an
// absent target.
func (a *Argument[T]) Value() T {
	var zero T
	if a == nil || a.value == nil {
		return zero
	}
	return a.value()
}
