package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	t.Cleanup(func() { _ = store.Close() })
	return store
}

// date is a test shorthand for building calendar dates.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNewSQLiteStorage(t *testing.T) {
	tests := []struct {
		name    string
		dbPath  string
		wantErr bool
	}{
		{
			name:    "empty path rejected",
			dbPath:  "",
			wantErr: true,
		},
		{
			name:    "in-memory database",
			dbPath:  ":memory:",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewSQLiteStorage(tt.dbPath)
			if tt.wantErr {
				if err == nil {
					_ = store.Close()
					t.Errorf("Expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			_ = store.Close()
		})
	}
}

func TestMigrate(t *testing.T) {
	ctx := context.Background()

	t.Run("reaches expected version", func(t *testing.T) {
		store := createTestStorage(t)

		var version int
		err := store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version)
		require.NoError(t, err)
		assert.Equal(t, ExpectedSchemaVersion, version)
	})

	t.Run("is idempotent", func(t *testing.T) {
		store := createTestStorage(t)

		require.NoError(t, store.Migrate(ctx))
		require.NoError(t, store.Migrate(ctx))
	})

	t.Run("creates the reporting view", func(t *testing.T) {
		store := createTestStorage(t)

		var count int
		err := store.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'view' AND name = 'transacciones_activas'`,
		).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestCheckIntegrity(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.CreateCategory(ctx, "Comida", "")
	require.NoError(t, err)

	report, err := store.CheckIntegrity(ctx)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Equal(t, 1, report.ActiveCategories)
	assert.Equal(t, 0, report.ActiveTransactions)
}
