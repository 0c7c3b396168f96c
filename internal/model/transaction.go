package model

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for transaction dates.
// Transactions carry no time-of-day component.
const DateLayout = "2006-01-02"

// TransactionType distinguishes money coming in from money going out.
// The amount itself is always positive; the sign lives here.
type TransactionType string

const (
	// TypeIncome marks a transaction that adds to the balance.
	TypeIncome TransactionType = "income"
	// TypeExpense marks a transaction that subtracts from the balance.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two accepted types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// ParseTransactionType converts user input into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.Valid() {
		return "", fmt.Errorf("invalid transaction type %q (want %q or %q)", s, TypeIncome, TypeExpense)
	}
	return t, nil
}

// Transaction is a single income or expense entry in the ledger.
type Transaction struct {
	Date         time.Time
	CategoryID   *int64
	Type         TransactionType
	Description  string
	CategoryName string // joined label; populated on reads, never written
	Amount       float64
	ID           int64
	Audit
}

// TransactionFilter narrows a transaction listing. All fields are
// optional and combine conjunctively; date bounds are inclusive.
type TransactionFilter struct {
	Type         *TransactionType
	CategoryName *string
	DateFrom     *time.Time
	DateTo       *time.Time
}

// IsZero reports whether no filter criteria are set.
func (f TransactionFilter) IsZero() bool {
	return f.Type == nil && f.CategoryName == nil && f.DateFrom == nil && f.DateTo == nil
}

// TransactionUpdate describes a partial update. Nil fields are left
// unchanged; ClearCategory removes the category reference.
type TransactionUpdate struct {
	Type          *TransactionType
	Amount        *float64
	CategoryID    *int64
	Description   *string
	Date          *time.Time
	ClearCategory bool
}

// IsZero reports whether the update changes nothing.
func (u TransactionUpdate) IsZero() bool {
	return u.Type == nil && u.Amount == nil && u.CategoryID == nil &&
		u.Description == nil && u.Date == nil && !u.ClearCategory
}
