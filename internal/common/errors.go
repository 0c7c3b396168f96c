// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifying failures with errors.Is.
var (
	// ErrValidation marks input that fails a domain rule.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a reference to a missing or soft-deleted record.
	ErrNotFound = errors.New("not found")
	// ErrStorage marks a failure inside the persistence layer.
	ErrStorage = errors.New("storage failure")
)

// ValidationError reports input that violates a domain rule. The caller
// can recover by correcting the input; no state was changed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports a referenced record that does not exist or has
// already been soft deleted.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a NotFoundError for the given entity and id.
func NewNotFoundError(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// StorageError wraps a persistence-layer fault. It is terminal for the
// operation; retry policy belongs to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStorage) match any StorageError regardless
// of the wrapped cause.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NewStorageError wraps err with the failing operation name.
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is a missing-record failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
