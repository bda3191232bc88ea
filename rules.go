package argvalidation

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateArgumentRules checks the value of arg against ozzo-validation rules,
// stopping at the first rule that fails. The failure is returned as an
// *ArgumentError of kind ErrArgumentInvalid carrying the rule's message and
// code. Internal rule errors are returned unchanged.
//
// Nothing is validated when arg is nil or no rules are given.
//
//	err := ValidateArgumentRules(Arg("email", email), validation.Length(3, 254), is.EmailFormat)
func ValidateArgumentRules[T any](arg *Argument[T], rules ...validation.Rule) error {
	if arg == nil {
		return nil
	}
	if arg.err != nil {
		return arg.err
	}

	rs := make([]validation.Rule, 0, len(rules))
	for _, r := range rules {
		if r != nil {
			rs = append(rs, r)
		}
	}
	if len(rs) == 0 {
		return nil
	}

	err := validation.Validate(arg.Value(), rs...)
	if err == nil {
		return nil
	}
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return err
	}
	var desc validation.Error
	if !errors.As(err, &desc) {
		desc = invalidDescription
	}
	return newArgumentError(paramName(arg.name), normalizeMessage(err.Error()), ErrArgumentInvalid, desc)
}
