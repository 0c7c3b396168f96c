package model

import "time"

// Audit carries the lifecycle timestamps shared by every ledger record.
// A nil DeletedAt means the record is active; soft deletion sets it and
// leaves the row in place.
type Audit struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// IsActive reports whether the record has not been soft deleted.
func (a Audit) IsActive() bool {
	return a.DeletedAt == nil
}
