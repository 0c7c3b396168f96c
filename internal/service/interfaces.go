// Package service defines the interfaces between the ledger core and
// its consumers. The CLI and seeding layers depend on these interfaces
// rather than on the concrete SQLite implementation.
package service

import (
	"context"
	"time"

	"github.com/gastos-cli/gastos/internal/model"
)

// CategoryStore owns CRUD and lookups for categories. Listings exclude
// soft-deleted rows unless the method says otherwise.
type CategoryStore interface {
	CreateCategory(ctx context.Context, name, description string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, name, description string) error
	GetCategoryByID(ctx context.Context, id int64) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListDeletedCategories(ctx context.Context) ([]model.Category, error)
	ListCategoryNames(ctx context.Context) ([]string, error)
	DeleteCategory(ctx context.Context, id int64) error
	RestoreCategory(ctx context.Context, id int64) error
	CountCategories(ctx context.Context) (active, deleted int, err error)
}

// TransactionStore owns CRUD and filtered queries for transactions.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, typ model.TransactionType, amount float64, categoryID *int64, description string, date time.Time) (*model.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, update model.TransactionUpdate) error
	GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error)
	ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	RestoreTransaction(ctx context.Context, id int64) error
	CountTransactions(ctx context.Context) (active, deleted int, err error)
}

// ReportStore derives aggregates from the active transaction set.
type ReportStore interface {
	SummaryBalance(ctx context.Context, filter model.TransactionFilter) (model.Balance, error)
	TotalsByCategory(ctx context.Context, typ *model.TransactionType) ([]model.CategoryTotal, error)
	TotalsByMonth(ctx context.Context, typ *model.TransactionType) ([]model.MonthTotal, error)
}

// Storage is the full persistence contract injected into the CLI.
type Storage interface {
	CategoryStore
	TransactionStore
	ReportStore

	Migrate(ctx context.Context) error
	CheckIntegrity(ctx context.Context) (*IntegrityReport, error)
	Close() error
}

// IntegrityReport summarizes a storage health check.
type IntegrityReport struct {
	Result             string
	ActiveCategories   int
	ActiveTransactions int
}

// OK reports whether the backing store passed its integrity check.
func (r *IntegrityReport) OK() bool {
	return r != nil && r.Result == "ok"
}
