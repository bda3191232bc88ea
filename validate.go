package argvalidation

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// unnamedArgument is reported when a target was given an empty name.
const unnamedArgument = "unnamed"

// ValidateArgument returns an *ArgumentError of kind ErrArgumentInvalid when
// predicate rejects the value of arg. The error is named after arg.
//
// Nothing is validated when arg or predicate is nil.
//
// msgAndArgs is an optional failure message, either a single value or a format
// string followed by its arguments. A blank message is ignored.
func ValidateArgument[T any](arg *Argument[T], predicate Predicate[T], msgAndArgs ...any) error {
	return check(arg, predicate, ErrArgumentInvalid, invalidDescription, msgAndArgs...)
}

// check evaluates predicate once and builds an error of the given kind on
// failure.
func check[T any](arg *Argument[T], predicate Predicate[T], kind error, desc validation.Error, msgAndArgs ...any) error {
	if arg == nil || predicate == nil {
		return nil
	}
	if arg.err != nil {
		return arg.err
	}
	if predicate(arg.Value()) {
		return nil
	}
	return newArgumentError(paramName(arg.name), failureMessage(msgAndArgs...), kind, desc)
}

func paramName(name string) string {
	if strings.TrimSpace(name) == "" {
		return unnamedArgument
	}
	return name
}

// failureMessage formats msgAndArgs the way testify does and drops messages
// that are nil, empty or only whitespace. A leading non-string followed by
// more values is printed as a list.
func failureMessage(msgAndArgs ...any) string {
	var msg string
	switch {
	case len(msgAndArgs) == 0:
		return ""
	case len(msgAndArgs) == 1:
		switch m := msgAndArgs[0].(type) {
		case nil:
			return ""
		case string:
			msg = m
		default:
			msg = fmt.Sprintf("%+v", msgAndArgs[0])
		}
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			msg = fmt.Sprintf(format, msgAndArgs[1:]...)
		} else {
			msg = fmt.Sprintf("%+v", msgAndArgs)
		}
	}
	return normalizeMessage(msg)
}

func normalizeMessage(msg string) string {
	if strings.TrimSpace(msg) == "" {
		return ""
	}
	return msg
}
