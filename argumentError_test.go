package argvalidation_test

import (
	"errors"
	"fmt"
	"testing"

	v "github.com/Gobd/argvalidation"
	"github.com/stretchr/testify/assert"
)

func TestArgumentError_Wrapped(t *testing.T) {
	var nullArgument *int
	err := fmt.Errorf("open account: %w", v.ValidateArgumentNotNil(v.Arg("nullArgument", nullArgument)))

	assert.ErrorIs(t, err, v.ErrArgumentMissing)
	var argErr *v.ArgumentError
	if assert.True(t, errors.As(err, &argErr)) {
		assert.Equal(t, "nullArgument", argErr.ParamName)
	}
	assert.Equal(t, "open account: nullArgument: is required", err.Error())
}

func TestArgumentError_KindsAreDistinct(t *testing.T) {
	var nullArgument *string

	missing := v.ValidateArgumentNotNil(v.Arg("nullArgument", nullArgument))
	invalid := v.ValidateArgumentNotNilOrEmpty(v.Arg("nullArgument", nullArgument))

	assert.ErrorIs(t, missing, v.ErrArgumentMissing)
	assert.NotErrorIs(t, missing, v.ErrArgumentInvalid)
	assert.ErrorIs(t, invalid, v.ErrArgumentInvalid)
	assert.NotErrorIs(t, invalid, v.ErrArgumentMissing)
}

func TestArgumentError_Zero(t *testing.T) {
	err := &v.ArgumentError{ParamName: "limit"}

	assert.Equal(t, "limit: is invalid", err.Error())
	assert.Equal(t, "validation_argument_invalid", err.Code())
	assert.NoError(t, errors.Unwrap(err))

	err.Message = "OmniOpen"
	assert.Equal(t, "limit: OmniOpen", err.Error())
}
