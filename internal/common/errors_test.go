package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("amount", "must be positive")

	assert.Equal(t, "invalid amount: must be positive", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "amount", verr.Field)

	t.Run("without field", func(t *testing.T) {
		err := NewValidationError("", "no fields to update")
		assert.Equal(t, "no fields to update", err.Error())
	})

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("creating transaction: %w", err)
		assert.True(t, IsValidation(wrapped))
	})
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("category", 7)

	assert.Equal(t, "category 7 not found", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))

	var nferr *NotFoundError
	require.True(t, errors.As(err, &nferr))
	assert.Equal(t, "category", nferr.Entity)
	assert.Equal(t, int64(7), nferr.ID)
}

func TestStorageError(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewStorageError("list transactions", cause)

	assert.Equal(t, "storage: list transactions: disk I/O error", err.Error())
	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, cause), "the underlying cause stays matchable")
	assert.False(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
}
