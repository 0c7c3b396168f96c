package storage

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/gastos-cli/gastos/internal/common"
	"github.com/gastos-cli/gastos/internal/model"
)

const transactionSelect = `
	SELECT t.id, t.tipo, t.monto, t.categoria_id, c.nombre,
	       t.descripcion, t.fecha, t.created_at, t.updated_at, t.deleted_at
	FROM transacciones t
	LEFT JOIN categorias c ON t.categoria_id = c.id`

// CreateTransaction validates and inserts a new transaction. A category
// reference, when given, must name a currently-active category.
func (s *SQLiteStorage) CreateTransaction(ctx context.Context, typ model.TransactionType, amount float64, categoryID *int64, description string, date time.Time) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateTransactionType(typ); err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}

	var categoryName string
	if categoryID != nil {
		cat, err := s.GetCategoryByID(ctx, *categoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, common.NewNotFoundError("category", *categoryID)
		}
		categoryName = cat.Name
	}

	ts := now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO transacciones (tipo, monto, categoria_id, descripcion, fecha, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(typ), amount, categoryID, strings.TrimSpace(description),
		date.Format(model.DateLayout), ts, ts)
	if err != nil {
		return nil, common.NewStorageError("create transaction", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, common.NewStorageError("create transaction", err)
	}

	txn := &model.Transaction{
		ID:           id,
		Type:         typ,
		Amount:       amount,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		Description:  strings.TrimSpace(description),
		Date:         truncateToDay(date),
		Audit:        model.Audit{CreatedAt: ts, UpdatedAt: ts},
	}

	slog.Info("created transaction", "id", id, "type", typ, "amount", amount)
	return txn, nil
}

// UpdateTransaction applies the provided fields to an active transaction.
// Unset fields keep their current value; ClearCategory drops the
// category reference.
func (s *SQLiteStorage) UpdateTransaction(ctx context.Context, id int64, update model.TransactionUpdate) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if update.IsZero() {
		return common.NewValidationError("update", "no fields provided")
	}
	if update.ClearCategory && update.CategoryID != nil {
		return common.NewValidationError("category_id", "cannot both set and clear the category")
	}

	current, err := s.GetTransactionByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return common.NewNotFoundError("transaction", id)
	}

	typ := current.Type
	if update.Type != nil {
		if err := validateTransactionType(*update.Type); err != nil {
			return err
		}
		typ = *update.Type
	}

	amount := current.Amount
	if update.Amount != nil {
		if err := validateAmount(*update.Amount); err != nil {
			return err
		}
		amount = *update.Amount
	}

	categoryID := current.CategoryID
	switch {
	case update.ClearCategory:
		categoryID = nil
	case update.CategoryID != nil:
		cat, catErr := s.GetCategoryByID(ctx, *update.CategoryID)
		if catErr != nil {
			return catErr
		}
		if cat == nil {
			return common.NewNotFoundError("category", *update.CategoryID)
		}
		categoryID = update.CategoryID
	}

	description := current.Description
	if update.Description != nil {
		description = strings.TrimSpace(*update.Description)
	}

	date := current.Date
	if update.Date != nil {
		if err := validateDate(*update.Date); err != nil {
			return err
		}
		date = *update.Date
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE transacciones
		SET tipo = ?, monto = ?, categoria_id = ?, descripcion = ?, fecha = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		string(typ), amount, categoryID, description, date.Format(model.DateLayout), now(), id)
	if err != nil {
		return common.NewStorageError("update transaction", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return common.NewStorageError("update transaction", err)
	}
	if rows == 0 {
		return common.NewNotFoundError("transaction", id)
	}

	slog.Debug("updated transaction", "id", id)
	return nil
}

// GetTransactionByID returns the active transaction with the given id,
// or (nil, nil) when it is absent or soft deleted. The category label is
// populated even when the referenced category has since been deleted.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id int64) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, transactionSelect+`
		WHERE t.id = ? AND t.deleted_at IS NULL`, id)

	txn, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, common.NewStorageError("get transaction", err)
	}
	return txn, nil
}

// ListTransactions returns active transactions matching the filter,
// most recent first. Each optional criterion contributes one bound
// predicate; they combine with AND.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	predicates, args, empty, err := s.buildFilterPredicates(ctx, filter)
	if err != nil {
		return nil, err
	}
	if empty {
		return []model.Transaction{}, nil
	}

	query := transactionSelect + `
		WHERE ` + strings.Join(predicates, " AND ") + `
		ORDER BY t.fecha DESC, t.id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewStorageError("list transactions", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, common.NewStorageError("list transactions", err)
		}
		transactions = append(transactions, *txn)
	}

	if err := rows.Err(); err != nil {
		return nil, common.NewStorageError("list transactions", err)
	}

	slog.Debug("retrieved transactions", "count", len(transactions))
	return transactions, nil
}

// DeleteTransaction soft-deletes a transaction, removing it from all
// listings and aggregates while keeping the row for history.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE transacciones
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL`, now(), id)
	if err != nil {
		return common.NewStorageError("delete transaction", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return common.NewStorageError("delete transaction", err)
	}
	if rows == 0 {
		return common.NewNotFoundError("transaction", id)
	}

	slog.Info("soft-deleted transaction", "id", id)
	return nil
}

// RestoreTransaction clears the deletion mark on a soft-deleted transaction.
func (s *SQLiteStorage) RestoreTransaction(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE transacciones
		SET deleted_at = NULL, updated_at = ?
		WHERE id = ? AND deleted_at IS NOT NULL`, now(), id)
	if err != nil {
		return common.NewStorageError("restore transaction", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return common.NewStorageError("restore transaction", err)
	}
	if rows == 0 {
		return common.NewNotFoundError("transaction", id)
	}

	slog.Info("restored transaction", "id", id)
	return nil
}

// CountTransactions returns the number of active and soft-deleted transactions.
func (s *SQLiteStorage) CountTransactions(ctx context.Context) (active, deleted int, err error) {
	if err := validateContext(ctx); err != nil {
		return 0, 0, err
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(CASE WHEN deleted_at IS NULL THEN 1 END),
			COUNT(CASE WHEN deleted_at IS NOT NULL THEN 1 END)
		FROM transacciones`).Scan(&active, &deleted)
	if err != nil {
		return 0, 0, common.NewStorageError("count transactions", err)
	}
	return active, deleted, nil
}

// buildFilterPredicates turns a TransactionFilter into a bound-parameter
// predicate list over the transacciones alias "t". Each optional
// criterion contributes at most one clause. A category name matching no
// active category short-circuits with empty=true: the result set is
// empty by definition, not an error.
func (s *SQLiteStorage) buildFilterPredicates(ctx context.Context, filter model.TransactionFilter) (predicates []string, args []any, empty bool, err error) {
	predicates = []string{"t.deleted_at IS NULL"}
	args = []any{}

	if filter.Type != nil {
		if err := validateTransactionType(*filter.Type); err != nil {
			return nil, nil, false, err
		}
		predicates = append(predicates, "t.tipo = ?")
		args = append(args, string(*filter.Type))
	}

	if filter.CategoryName != nil {
		cat, catErr := s.GetCategoryByName(ctx, *filter.CategoryName)
		if catErr != nil {
			return nil, nil, false, catErr
		}
		if cat == nil {
			return nil, nil, true, nil
		}
		predicates = append(predicates, "t.categoria_id = ?")
		args = append(args, cat.ID)
	}

	if filter.DateFrom != nil {
		predicates = append(predicates, "t.fecha >= ?")
		args = append(args, filter.DateFrom.Format(model.DateLayout))
	}

	if filter.DateTo != nil {
		predicates = append(predicates, "t.fecha <= ?")
		args = append(args, filter.DateTo.Format(model.DateLayout))
	}

	return predicates, args, false, nil
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var txn model.Transaction
	var typ string
	var categoryID sql.NullInt64
	var categoryName sql.NullString
	var fecha time.Time
	var deletedAt sql.NullTime

	if err := row.Scan(
		&txn.ID,
		&typ,
		&txn.Amount,
		&categoryID,
		&categoryName,
		&txn.Description,
		&fecha,
		&txn.CreatedAt,
		&txn.UpdatedAt,
		&deletedAt,
	); err != nil {
		return nil, err
	}

	txn.Type = model.TransactionType(typ)
	if categoryID.Valid {
		id := categoryID.Int64
		txn.CategoryID = &id
	}
	if categoryName.Valid {
		txn.CategoryName = categoryName.String
	}
	if deletedAt.Valid {
		txn.DeletedAt = &deletedAt.Time
	}

	// The driver hands DATE columns back as time.Time already.
	txn.Date = truncateToDay(fecha)

	return &txn, nil
}

// truncateToDay drops any time-of-day component from a date.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
