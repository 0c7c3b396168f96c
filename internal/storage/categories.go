package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gastos-cli/gastos/internal/common"
	"github.com/gastos-cli/gastos/internal/model"
)

const categoryColumns = "id, nombre, descripcion, created_at, updated_at, deleted_at"

// CreateCategory inserts a new category after trimming and validating
// its name. The name must be unique among active categories; a deleted
// category's name may be reused.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, name, description string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	trimmed, err := validateCategoryName(name)
	if err != nil {
		return nil, err
	}

	exists, err := s.activeCategoryNameExists(ctx, trimmed, 0)
	if err != nil {
		return nil, common.NewStorageError("create category", err)
	}
	if exists {
		return nil, common.NewValidationError("name",
			fmt.Sprintf("an active category named %q already exists", trimmed))
	}

	ts := now()
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO categorias (nombre, descripcion, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		trimmed, strings.TrimSpace(description), ts, ts)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewValidationError("name",
				fmt.Sprintf("an active category named %q already exists", trimmed))
		}
		return nil, common.NewStorageError("create category", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, common.NewStorageError("create category", err)
	}

	category := &model.Category{
		ID:          id,
		Name:        trimmed,
		Description: strings.TrimSpace(description),
		Audit:       model.Audit{CreatedAt: ts, UpdatedAt: ts},
	}

	slog.Info("created category", "name", trimmed, "id", id)
	return category, nil
}

// UpdateCategory applies trimmed values to an active category and
// refreshes its updated_at timestamp.
func (s *SQLiteStorage) UpdateCategory(ctx context.Context, id int64, name, description string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	trimmed, err := validateCategoryName(name)
	if err != nil {
		return err
	}

	exists, err := s.activeCategoryNameExists(ctx, trimmed, id)
	if err != nil {
		return common.NewStorageError("update category", err)
	}
	if exists {
		return common.NewValidationError("name",
			fmt.Sprintf("an active category named %q already exists", trimmed))
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE categorias
		SET nombre = ?, descripcion = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		trimmed, strings.TrimSpace(description), now(), id)
	if err != nil {
		return common.NewStorageError("update category", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return common.NewStorageError("update category", err)
	}
	if rows == 0 {
		return common.NewNotFoundError("category", id)
	}

	slog.Debug("updated category", "id", id, "name", trimmed)
	return nil
}

// GetCategoryByID returns the active category with the given id, or
// (nil, nil) when it is absent or soft deleted.
func (s *SQLiteStorage) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+categoryColumns+`
		FROM categorias
		WHERE id = ? AND deleted_at IS NULL`, id)

	cat, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, common.NewStorageError("get category", err)
	}
	return cat, nil
}

// GetCategoryByName returns the active category with the given name, or
// (nil, nil) when no active category matches.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+categoryColumns+`
		FROM categorias
		WHERE nombre = ? AND deleted_at IS NULL`, strings.TrimSpace(name))

	cat, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, common.NewStorageError("get category by name", err)
	}
	return cat, nil
}

// ListCategories returns all active categories ordered by name.
func (s *SQLiteStorage) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.listCategories(ctx, "deleted_at IS NULL")
}

// ListDeletedCategories returns all soft-deleted categories ordered by name.
func (s *SQLiteStorage) ListDeletedCategories(ctx context.Context) ([]model.Category, error) {
	return s.listCategories(ctx, "deleted_at IS NOT NULL")
}

func (s *SQLiteStorage) listCategories(ctx context.Context, where string) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+categoryColumns+`
		FROM categorias
		WHERE `+where+`
		ORDER BY nombre`)
	if err != nil {
		return nil, common.NewStorageError("list categories", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, common.NewStorageError("list categories", err)
		}
		categories = append(categories, *cat)
	}

	if err := rows.Err(); err != nil {
		return nil, common.NewStorageError("list categories", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// ListCategoryNames returns the names of all active categories, ordered,
// for populating selection widgets.
func (s *SQLiteStorage) ListCategoryNames(ctx context.Context) ([]string, error) {
	categories, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		names = append(names, cat.Name)
	}
	return names, nil
}

// DeleteCategory soft-deletes a category. Existing transactions keep
// their reference; deletion never cascades.
func (s *SQLiteStorage) DeleteCategory(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE categorias
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL`, now(), id)
	if err != nil {
		return common.NewStorageError("delete category", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return common.NewStorageError("delete category", err)
	}
	if rows == 0 {
		return common.NewNotFoundError("category", id)
	}

	slog.Info("soft-deleted category", "id", id)
	return nil
}

// RestoreCategory clears the deletion mark on a soft-deleted category.
// It fails when an active category has since claimed the same name.
func (s *SQLiteStorage) RestoreCategory(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var name string
	err := s.db.QueryRowContext(ctx, `
		SELECT nombre FROM categorias
		WHERE id = ? AND deleted_at IS NOT NULL`, id).Scan(&name)
	if err == sql.ErrNoRows {
		return common.NewNotFoundError("category", id)
	}
	if err != nil {
		return common.NewStorageError("restore category", err)
	}

	exists, err := s.activeCategoryNameExists(ctx, name, 0)
	if err != nil {
		return common.NewStorageError("restore category", err)
	}
	if exists {
		return common.NewValidationError("name",
			fmt.Sprintf("an active category named %q already exists", name))
	}

	if _, err := s.db.ExecContext(ctx, `
		UPDATE categorias
		SET deleted_at = NULL, updated_at = ?
		WHERE id = ? AND deleted_at IS NOT NULL`, now(), id); err != nil {
		return common.NewStorageError("restore category", err)
	}

	slog.Info("restored category", "id", id, "name", name)
	return nil
}

// CountCategories returns the number of active and soft-deleted categories.
func (s *SQLiteStorage) CountCategories(ctx context.Context) (active, deleted int, err error) {
	if err := validateContext(ctx); err != nil {
		return 0, 0, err
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(CASE WHEN deleted_at IS NULL THEN 1 END),
			COUNT(CASE WHEN deleted_at IS NOT NULL THEN 1 END)
		FROM categorias`).Scan(&active, &deleted)
	if err != nil {
		return 0, 0, common.NewStorageError("count categories", err)
	}
	return active, deleted, nil
}

// activeCategoryNameExists checks active-name uniqueness, excluding the
// row with excludeID (0 excludes nothing).
func (s *SQLiteStorage) activeCategoryNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM categorias
			WHERE nombre = ? AND deleted_at IS NULL AND id != ?
		)`, name, excludeID).Scan(&exists)
	return exists, err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (*model.Category, error) {
	var cat model.Category
	var deletedAt sql.NullTime
	if err := row.Scan(
		&cat.ID,
		&cat.Name,
		&cat.Description,
		&cat.CreatedAt,
		&cat.UpdatedAt,
		&deletedAt,
	); err != nil {
		return nil, err
	}
	if deletedAt.Valid {
		cat.DeletedAt = &deletedAt.Time
	}
	return &cat, nil
}
