package storage

import (
	"context"
	"strings"

	"github.com/gastos-cli/gastos/internal/common"
	"github.com/gastos-cli/gastos/internal/model"
)

// SummaryBalance sums active transaction amounts by type over the
// optionally filtered set. Zeros come back when nothing matches.
func (s *SQLiteStorage) SummaryBalance(ctx context.Context, filter model.TransactionFilter) (model.Balance, error) {
	if err := validateContext(ctx); err != nil {
		return model.Balance{}, err
	}

	predicates, args, empty, err := s.buildFilterPredicates(ctx, filter)
	if err != nil {
		return model.Balance{}, err
	}
	if empty {
		return model.Balance{}, nil
	}

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN t.tipo = ? THEN t.monto END), 0),
			COALESCE(SUM(CASE WHEN t.tipo = ? THEN t.monto END), 0)
		FROM transacciones t
		WHERE ` + strings.Join(predicates, " AND ")

	queryArgs := append([]any{string(model.TypeIncome), string(model.TypeExpense)}, args...)

	var balance model.Balance
	err = s.db.QueryRowContext(ctx, query, queryArgs...).Scan(&balance.TotalIncome, &balance.TotalExpense)
	if err != nil {
		return model.Balance{}, common.NewStorageError("summary balance", err)
	}

	balance.Balance = balance.TotalIncome - balance.TotalExpense
	return balance, nil
}

// TotalsByCategory groups active transactions by category label, summed
// and ordered by total descending. Transactions with no category fall
// under the Uncategorized sentinel; labels of since-deleted categories
// still resolve through the reporting view.
func (s *SQLiteStorage) TotalsByCategory(ctx context.Context, typ *model.TransactionType) ([]model.CategoryTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT COALESCE(categoria, ?), SUM(monto) AS total
		FROM transacciones_activas`
	args := []any{model.UncategorizedLabel}

	if typ != nil {
		if err := validateTransactionType(*typ); err != nil {
			return nil, err
		}
		query += ` WHERE tipo = ?`
		args = append(args, string(*typ))
	}

	query += `
		GROUP BY COALESCE(categoria, ?)
		ORDER BY total DESC`
	args = append(args, model.UncategorizedLabel)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewStorageError("totals by category", err)
	}
	defer func() { _ = rows.Close() }()

	var totals []model.CategoryTotal
	for rows.Next() {
		var row model.CategoryTotal
		if err := rows.Scan(&row.Category, &row.Total); err != nil {
			return nil, common.NewStorageError("totals by category", err)
		}
		totals = append(totals, row)
	}

	if err := rows.Err(); err != nil {
		return nil, common.NewStorageError("totals by category", err)
	}
	return totals, nil
}

// TotalsByMonth groups active transactions by calendar month in
// ascending chronological order. Months with no transactions are
// omitted; gap filling is the consumer's concern.
func (s *SQLiteStorage) TotalsByMonth(ctx context.Context, typ *model.TransactionType) ([]model.MonthTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT strftime('%Y-%m', fecha) AS mes, SUM(monto)
		FROM transacciones_activas`
	args := []any{}

	if typ != nil {
		if err := validateTransactionType(*typ); err != nil {
			return nil, err
		}
		query += ` WHERE tipo = ?`
		args = append(args, string(*typ))
	}

	query += `
		GROUP BY mes
		ORDER BY mes ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewStorageError("totals by month", err)
	}
	defer func() { _ = rows.Close() }()

	var totals []model.MonthTotal
	for rows.Next() {
		var row model.MonthTotal
		if err := rows.Scan(&row.Month, &row.Total); err != nil {
			return nil, common.NewStorageError("totals by month", err)
		}
		totals = append(totals, row)
	}

	if err := rows.Err(); err != nil {
		return nil, common.NewStorageError("totals by month", err)
	}
	return totals, nil
}
