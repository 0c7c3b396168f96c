// Package storage provides the SQLite persistence layer for the ledger.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/gastos-cli/gastos/internal/service"
)

// SQLiteStorage implements service.Storage using SQLite. A single
// serialized connection backs every operation; SQLite does not benefit
// from more, and one writer is all the ledger needs.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage opens (creating if necessary) the database at dbPath.
// Use ":memory:" for an ephemeral database in tests.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// CheckIntegrity runs SQLite's integrity check and counts active rows.
func (s *SQLiteStorage) CheckIntegrity(ctx context.Context) (*service.IntegrityReport, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	report := &service.IntegrityReport{}

	if err := s.db.QueryRowContext(ctx, "PRAGMA integrity_check").Scan(&report.Result); err != nil {
		return nil, fmt.Errorf("failed to run integrity check: %w", err)
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM categorias WHERE deleted_at IS NULL`,
	).Scan(&report.ActiveCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transacciones WHERE deleted_at IS NULL`,
	).Scan(&report.ActiveTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	return report, nil
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure,
// e.g. a race on the active-category-name index.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// queryable is an interface satisfied by both *sql.DB and *sql.Tx.
type queryable interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// now returns the current instant truncated to whole seconds, matching
// the resolution SQLite's CURRENT_TIMESTAMP uses in the triggers.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
