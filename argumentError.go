package argvalidation

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrArgumentInvalid is the kind of an argument that was supplied but
	// failed a rule.
	ErrArgumentInvalid = errors.New("argument invalid")
	// ErrArgumentMissing is the kind of an argument that was nil.
	ErrArgumentMissing = errors.New("argument missing")

	// ErrStructPointer is returned for a Field target whose struct is not a
	// non-nil pointer to a struct.
	ErrStructPointer = errors.New("argument field target must be a non-nil pointer to a struct")
	// ErrFieldNotFound is returned for a Field target whose field pointer does
	// not address a field of the struct.
	ErrFieldNotFound = errors.New("argument field not found in struct")
)

// invalidDescription describes an argument rejected by a caller-supplied predicate.
var invalidDescription = validation.NewError("validation_argument_invalid", "is invalid")

// ArgumentError is returned when an argument fails validation. It unwraps to
// ErrArgumentInvalid or ErrArgumentMissing.
type ArgumentError struct {
	// ParamName is the name of the parameter that failed.
	ParamName string
	// Message is the failure message, empty when none was given.
	Message string

	kind error
	desc validation.Error
}

func newArgumentError(name, message string, kind error, desc validation.Error) *ArgumentError {
	return &ArgumentError{
		ParamName: name,
		Message:   message,
		kind:      kind,
		desc:      desc,
	}
}

// Error returns "name: message", falling back to a default description of the
// failure when no message was given.
func (e *ArgumentError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.description().Error()
	}
	return e.ParamName + ": " + msg
}

// Code returns the machine readable code of the failure, e.g.
// "validation_not_nil_required".
func (e *ArgumentError) Code() string {
	return e.description().Code()
}

func (e *ArgumentError) description() validation.Error {
	if e.desc == nil {
		return invalidDescription
	}
	return e.desc
}

func (e *ArgumentError) Unwrap() error {
	return e.kind
}
