package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listQuery struct {
	HasError string `validate:"omitempty,oneof=true false"`
	Limit    int    `validate:"min=1,max=500"`
}

type stamped struct {
	At string `validate:"required,upper"`
}

func TestValidateAndFormat(t *testing.T) {
	t.Parallel()
	v := NewValidator()

	require.NoError(t, v.Validate(&listQuery{HasError: "true", Limit: 10}))

	err := v.Validate(&listQuery{HasError: "maybe", Limit: 0})
	require.Error(t, err)

	formatted := v.FormatValidationErrors(err)
	assert.Equal(t, "HasError must be one of: true false", formatted["HasError"])
	assert.Equal(t, "Limit must be at least 1", formatted["Limit"])
}

func TestRegisterValidationAndValidateSlice(t *testing.T) {
	t.Parallel()
	v := NewValidator()
	require.NoError(t, v.RegisterValidation("upper", func(value string) bool {
		return value == strings.ToUpper(value)
	}))

	assert.NoError(t, v.ValidateSlice([]stamped{{At: "A"}, {At: "B"}}))

	err := v.ValidateSlice([]stamped{{At: "A"}, {At: "b"}})
	require.Error(t, err)
	assert.Equal(t, "At is invalid", v.FormatValidationErrors(err)["At"])

	err = v.ValidateSlice([]stamped{{}})
	require.Error(t, err)
	assert.Equal(t, "At is required", v.FormatValidationErrors(err)["At"])
}
