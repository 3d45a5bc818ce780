package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestIsValidUsername(t *testing.T) {
	require.True(t, IsValidUsername("alice"))
	require.False(t, IsValidUsername(""))
	require.False(t, IsValidUsername("   "))
}

func TestCustomValidator(t *testing.T) {
	type payload struct {
		Username string `validate:"required"`
	}

	v := NewCustomValidator(validator.New())
	require.NoError(t, v.Validate(payload{Username: "alice"}))
	require.Error(t, v.Validate(payload{}))
}
