package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gastos-cli/gastos/internal/common"
	"github.com/gastos-cli/gastos/internal/model"
)

// Validation errors for programmer-level misuse of the storage API.
// Domain-rule violations use common.ValidationError instead.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateCategoryName checks the domain rules for a category name and
// returns the trimmed value.
func validateCategoryName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", common.NewValidationError("name", "cannot be empty")
	}
	return trimmed, nil
}

// validateTransactionType checks the type against the closed enum.
func validateTransactionType(typ model.TransactionType) error {
	if !typ.Valid() {
		return common.NewValidationError("type",
			fmt.Sprintf("must be %q or %q, got %q", model.TypeIncome, model.TypeExpense, typ))
	}
	return nil
}

// validateAmount enforces strictly positive amounts; sign is carried by
// the transaction type, never by the amount.
func validateAmount(amount float64) error {
	if amount <= 0 {
		return common.NewValidationError("amount", "must be greater than zero")
	}
	return nil
}

// validateDate rejects the zero date.
func validateDate(date time.Time) error {
	if date.IsZero() {
		return common.NewValidationError("date", "is required")
	}
	return nil
}
