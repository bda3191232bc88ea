package argvalidation

import (
	"strings"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateArgumentNotNilOrEmpty returns an *ArgumentError of kind
// ErrArgumentInvalid when the text of arg is nil or empty.
//
// Nothing is validated when arg is nil.
func ValidateArgumentNotNilOrEmpty[S Text](arg *Argument[S], msgAndArgs ...any) error {
	return check(arg, isNotNilOrEmpty[S], ErrArgumentInvalid, validation.ErrRequired, msgAndArgs...)
}

// ValidateArgumentNotNilOrWhitespace returns an *ArgumentError of kind
// ErrArgumentInvalid when the text of arg is nil, empty, or only whitespace.
//
// Nothing is validated when arg is nil.
func ValidateArgumentNotNilOrWhitespace[S Text](arg *Argument[S], msgAndArgs ...any) error {
	return check(arg, isNotNilOrWhitespace[S], ErrArgumentInvalid, validation.ErrRequired, msgAndArgs...)
}

func isNotNilOrEmpty[S Text](value S) bool {
	s, ok := text(value)
	return ok && !govalidator.IsNull(s)
}

func isNotNilOrWhitespace[S Text](value S) bool {
	s, ok := text(value)
	return ok && !govalidator.IsNull(strings.TrimSpace(s))
}

// text returns the string held by value, and false when value is a nil *string.
func text[S Text](value S) (string, bool) {
	v, isNil := validation.Indirect(value)
	if isNil {
		return "", false
	}
	_, s, _, _ := validation.StringOrBytes(v)
	return s, true
}
