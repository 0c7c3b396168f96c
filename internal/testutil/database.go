// Package testutil provides test helpers for exercising the ledger
// against a real in-memory SQLite database.
package testutil

import (
	"context"
	"testing"

	"github.com/gastos-cli/gastos/internal/service"
	"github.com/gastos-cli/gastos/internal/storage"
)

// TestDB wraps a migrated in-memory database for tests.
type TestDB struct {
	Storage service.Storage
	t       *testing.T
}

// SetupTestDB creates a migrated in-memory database, seeds the given
// category names, and registers cleanup.
func SetupTestDB(t *testing.T, categoryNames ...string) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	for _, name := range categoryNames {
		if _, err := store.CreateCategory(ctx, name, ""); err != nil {
			t.Fatalf("failed to seed category %q: %v", name, err)
		}
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{Storage: store, t: t}
}

// MustCategoryID returns the id of the active category with the given
// name or fails the test.
func (db *TestDB) MustCategoryID(name string) int64 {
	db.t.Helper()

	cat, err := db.Storage.GetCategoryByName(context.Background(), name)
	if err != nil {
		db.t.Fatalf("failed to look up category %q: %v", name, err)
	}
	if cat == nil {
		db.t.Fatalf("category %q not found", name)
	}
	return cat.ID
}
