package result_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "usersvc/internal/errors"
	"usersvc/internal/result"
)

func TestOk(t *testing.T) {
	r := result.Ok(42)

	assert.True(t, r.IsOk())
	assert.Equal(t, 42, r.Value())
	assert.Nil(t, r.Error())

	v, err := r.Unwrap()
	assert.Equal(t, 42, v)
	assert.NoError(t, err)
}

func TestErr(t *testing.T) {
	r := result.Err[string](apperror.NewNotFoundError("User not found"))

	assert.False(t, r.IsOk())
	assert.Empty(t, r.Value())
	assert.Equal(t, apperror.KindNotFound, r.Error().Kind())

	_, err := r.Unwrap()
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestErr_NilBecomesInternal(t *testing.T) {
	r := result.Err[int](nil)

	assert.False(t, r.IsOk())
	if assert.NotNil(t, r.Error()) {
		assert.Equal(t, apperror.KindInternalServerError, r.Error().Kind())
	}
}

func TestZeroValueIsFailureWithoutError(t *testing.T) {
	var r result.Result[int]
	assert.False(t, r.IsOk())
}
