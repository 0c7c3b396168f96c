package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, TypeIncome.Valid())
	assert.True(t, TypeExpense.Valid())
	assert.False(t, TransactionType("transfer").Valid())
	assert.False(t, TransactionType("").Valid())
	assert.False(t, TransactionType("Income").Valid(), "types are case sensitive")
}

func TestParseTransactionType(t *testing.T) {
	typ, err := ParseTransactionType("income")
	require.NoError(t, err)
	assert.Equal(t, TypeIncome, typ)

	typ, err = ParseTransactionType("expense")
	require.NoError(t, err)
	assert.Equal(t, TypeExpense, typ)

	_, err = ParseTransactionType("transfer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transfer")
}

func TestTransactionFilterIsZero(t *testing.T) {
	assert.True(t, TransactionFilter{}.IsZero())

	typ := TypeExpense
	assert.False(t, TransactionFilter{Type: &typ}.IsZero())

	when := time.Now()
	assert.False(t, TransactionFilter{DateTo: &when}.IsZero())
}

func TestTransactionUpdateIsZero(t *testing.T) {
	assert.True(t, TransactionUpdate{}.IsZero())
	assert.False(t, TransactionUpdate{ClearCategory: true}.IsZero())

	amount := 10.0
	assert.False(t, TransactionUpdate{Amount: &amount}.IsZero())
}

func TestAuditIsActive(t *testing.T) {
	var a Audit
	assert.True(t, a.IsActive())

	when := time.Now()
	a.DeletedAt = &when
	assert.False(t, a.IsActive())
}
