package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 4

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS categorias (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					nombre TEXT NOT NULL,
					descripcion TEXT NOT NULL DEFAULT '',
					created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
					deleted_at DATETIME NULL
				)`,
				`CREATE INDEX idx_categorias_deleted_at ON categorias(deleted_at)`,

				`CREATE TABLE IF NOT EXISTS transacciones (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					tipo TEXT NOT NULL CHECK(tipo IN ('income', 'expense')),
					monto REAL NOT NULL CHECK(monto > 0),
					categoria_id INTEGER,
					descripcion TEXT NOT NULL DEFAULT '',
					fecha DATE NOT NULL,
					created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
					deleted_at DATETIME NULL,
					FOREIGN KEY (categoria_id) REFERENCES categorias(id)
				)`,
				`CREATE INDEX idx_transacciones_deleted_at ON transacciones(deleted_at)`,
				`CREATE INDEX idx_transacciones_categoria ON transacciones(categoria_id)`,
				`CREATE INDEX idx_transacciones_fecha ON transacciones(fecha)`,
				`CREATE INDEX idx_transacciones_tipo ON transacciones(tipo)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Audit triggers to refresh updated_at",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TRIGGER IF NOT EXISTS update_categorias_updated_at
				AFTER UPDATE ON categorias
				FOR EACH ROW
				BEGIN
					UPDATE categorias SET updated_at = CURRENT_TIMESTAMP WHERE id = NEW.id;
				END`,
				`CREATE TRIGGER IF NOT EXISTS update_transacciones_updated_at
				AFTER UPDATE ON transacciones
				FOR EACH ROW
				BEGIN
					UPDATE transacciones SET updated_at = CURRENT_TIMESTAMP WHERE id = NEW.id;
				END`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Reporting view over active transactions",
		Up: func(tx *sql.Tx) error {
			// Deleted categories still resolve their name here so historical
			// transactions keep their original label.
			_, err := tx.Exec(`
				CREATE VIEW IF NOT EXISTS transacciones_activas AS
				SELECT
					t.id,
					t.tipo,
					t.monto,
					t.categoria_id,
					c.nombre AS categoria,
					t.descripcion,
					t.fecha,
					t.created_at,
					t.updated_at
				FROM transacciones t
				LEFT JOIN categorias c ON t.categoria_id = c.id
				WHERE t.deleted_at IS NULL
			`)
			return err
		},
	},
	{
		Version:     4,
		Description: "Unique names among active categories only",
		Up: func(tx *sql.Tx) error {
			// Partial index: a soft-deleted category frees its name for reuse.
			_, err := tx.Exec(`
				CREATE UNIQUE INDEX IF NOT EXISTS idx_categorias_nombre_activo
				ON categorias(nombre) WHERE deleted_at IS NULL
			`)
			return err
		},
	},
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
