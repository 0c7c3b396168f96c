package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gastos-cli/gastos/internal/model"
	"github.com/gastos-cli/gastos/internal/testutil"
)

func TestGeneratorRun(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds defaults and requested transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		opts := Options{Transactions: 25, Seed: 42, Quiet: true}
		require.NoError(t, NewGenerator(db.Storage, opts).Run(ctx))

		categories, err := db.Storage.ListCategories(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(categories), 5, "default categories present")

		transactions, err := db.Storage.ListTransactions(ctx, model.TransactionFilter{})
		require.NoError(t, err)
		assert.Len(t, transactions, 25)

		for _, txn := range transactions {
			assert.True(t, txn.Type.Valid())
			assert.Greater(t, txn.Amount, 0.0)
			assert.False(t, txn.Date.IsZero())
		}
	})

	t.Run("second run reuses default categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		opts := Options{Transactions: 5, Seed: 42, Quiet: true}
		require.NoError(t, NewGenerator(db.Storage, opts).Run(ctx))
		require.NoError(t, NewGenerator(db.Storage, opts).Run(ctx))

		categories, err := db.Storage.ListCategories(ctx)
		require.NoError(t, err)

		seen := make(map[string]int)
		for _, cat := range categories {
			seen[cat.Name]++
		}
		assert.Equal(t, 1, seen["Comida"], "defaults are not duplicated")

		transactions, err := db.Storage.ListTransactions(ctx, model.TransactionFilter{})
		require.NoError(t, err)
		assert.Len(t, transactions, 10)
	})

	t.Run("extra categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		opts := Options{Categories: 3, Transactions: 0, Seed: 7, Quiet: true}
		require.NoError(t, NewGenerator(db.Storage, opts).Run(ctx))

		categories, err := db.Storage.ListCategories(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(categories), 8)
	})

	t.Run("negative counts rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)

		opts := Options{Transactions: -1, Quiet: true}
		err := NewGenerator(db.Storage, opts).Run(ctx)
		require.Error(t, err)
	})
}
