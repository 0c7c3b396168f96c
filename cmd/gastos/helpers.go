package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/gastos-cli/gastos/internal/config"
	"github.com/gastos-cli/gastos/internal/model"
	"github.com/gastos-cli/gastos/internal/service"
	"github.com/gastos-cli/gastos/internal/storage"
)

// initStorage opens the configured database and brings its schema up to
// date. Callers own the returned store and must Close it.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/gastos/gastos.db"
	}

	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// parseID parses a positional id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(value, flagName string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(model.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q (want YYYY-MM-DD)", flagName, value)
	}
	return &date, nil
}

// parseTypeFlag parses an optional income/expense flag value.
func parseTypeFlag(value string) (*model.TransactionType, error) {
	if value == "" {
		return nil, nil
	}
	typ, err := model.ParseTransactionType(value)
	if err != nil {
		return nil, err
	}
	return &typ, nil
}

// buildFilter assembles a TransactionFilter from the shared flag set.
func buildFilter(typeFlag, categoryFlag, fromFlag, toFlag string) (model.TransactionFilter, error) {
	var filter model.TransactionFilter

	typ, err := parseTypeFlag(typeFlag)
	if err != nil {
		return filter, err
	}
	filter.Type = typ

	if categoryFlag != "" {
		filter.CategoryName = &categoryFlag
	}

	if filter.DateFrom, err = parseDateFlag(fromFlag, "from"); err != nil {
		return filter, err
	}
	if filter.DateTo, err = parseDateFlag(toFlag, "to"); err != nil {
		return filter, err
	}

	return filter, nil
}
