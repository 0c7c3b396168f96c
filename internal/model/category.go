package model

// Category groups transactions under a user-defined label.
// Name is unique among active categories only; a deleted category's
// name may be reused by a new one.
type Category struct {
	Name        string
	Description string
	ID          int64
	Audit
}
