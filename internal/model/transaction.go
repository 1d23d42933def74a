// Package model defines the value types shared by the ledger store, the
// metrics engine, and the front ends.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Type distinguishes money coming in from money going out.
type Type string

const (
	// TypeIncome marks a transaction that increases the balance.
	TypeIncome Type = "income"
	// TypeExpense marks a transaction that decreases the balance.
	TypeExpense Type = "expense"
)

// Valid reports whether t is a known transaction type.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single immutable ledger record. Amount is in minor
// currency units (cents); all arithmetic over transactions stays in
// integers to avoid rounding drift.
type Transaction struct {
	Date        time.Time
	Type        Type
	Category    string
	Description string
	Amount      int64
}

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidType     = errors.New("unknown transaction type")
	ErrEmptyCategory   = errors.New("category is required")
	ErrZeroDate        = errors.New("date is required")
	ErrBadDescription  = errors.New("description must not contain a comma")
	ErrNegativeLimit   = errors.New("budget limit must not be negative")
	ErrUnknownCategory = errors.New("unknown category")
)

// Validate checks the invariants every stored transaction must satisfy.
// The description may be empty, but it can never contain the ledger
// field delimiter.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrZeroDate
	}
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, t.Type)
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.Contains(t.Description, ",") {
		return ErrBadDescription
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Budgets maps an expense category to its monthly limit in minor units.
// Last write wins; the metrics engine only ever reads a snapshot.
type Budgets map[string]int64

// Validate rejects negative limits. A zero limit is tolerated and simply
// yields zero utilization downstream.
func (b Budgets) Validate() error {
	for category, limit := range b {
		if limit < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeLimit, category)
		}
	}
	return nil
}
