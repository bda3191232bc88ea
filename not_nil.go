package argvalidation

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateArgumentNotNil returns an *ArgumentError of kind ErrArgumentMissing
// when the value of arg is nil. These count as nil:
//   - an untyped nil, or a nil pointer, interface, map, slice, func or chan
//   - an interface holding a typed nil, e.g. an error set to (*MyErr)(nil)
//   - a non-nil pointer leading to any of the above, e.g. a *[]int pointing
//     at a nil slice
//   - a driver.Valuer whose Value returns nil, such as an invalid
//     sql.NullString
//
// Nothing is validated when arg is nil.
func ValidateArgumentNotNil[T any](arg *Argument[T], msgAndArgs ...any) error {
	return check(arg, isNotNil[T], ErrArgumentMissing, validation.ErrNotNilRequired, msgAndArgs...)
}

func isNotNil[T any](value T) bool {
	_, isNil := validation.Indirect(value)
	return !isNil
}
