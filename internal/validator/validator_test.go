package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"usersvc/internal/validator"
)

func TestIsNullOrUndefined(t *testing.T) {
	assert.True(t, validator.IsNullOrUndefined(nil))
	assert.False(t, validator.IsNullOrUndefined(""))
	assert.False(t, validator.IsNullOrUndefined(0.0))
	assert.False(t, validator.IsNullOrUndefined(false))
}

func TestIsValidString(t *testing.T) {
	assert.True(t, validator.IsValidString("a"))
	assert.True(t, validator.IsValidString("  a  "))
	assert.False(t, validator.IsValidString(""))
	assert.False(t, validator.IsValidString(" \t\n"))
	assert.False(t, validator.IsValidString(nil))
	assert.False(t, validator.IsValidString(12.0))
	assert.False(t, validator.IsValidString([]any{"a"}))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"jane.doe@mail.example.org",
		"j-d_1@ex-ample.io",
	}
	for _, e := range valid {
		assert.True(t, validator.IsValidEmail(e), e)
	}

	invalid := []any{
		"",
		"jane",
		"jane@",
		"@example.com",
		"jane@example",
		"jane@example.c",
		"jane@example.toolong",
		"jane doe@example.com",
		"jane+tag@example.com",
		nil,
		42.0,
	}
	for _, e := range invalid {
		assert.False(t, validator.IsValidEmail(e), "%v", e)
	}
}

func TestDoesPropertyExist(t *testing.T) {
	data := map[string]any{"id": nil, "name": "x"}

	assert.True(t, validator.DoesPropertyExist(data, "id"))
	assert.True(t, validator.DoesPropertyExist(data, "name"))
	assert.False(t, validator.DoesPropertyExist(data, "other"))
	assert.False(t, validator.DoesPropertyExist(nil, "id"))
}
