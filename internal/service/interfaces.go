// Package service defines the contracts between the front ends and the
// persistence layer.
package service

import (
	"context"

	"github.com/pennywise-finance/pennywise/internal/model"
)

// LedgerStore is the persistence contract every front end works against.
// Reads return full snapshots: the metrics engine recomputes everything
// from scratch on each query, so there is no incremental API. Reads are
// tolerant of malformed records (a bad record is skipped with a warning,
// never fatal); budgets are last-write-wins.
type LedgerStore interface {
	// ReadTransactions returns all transactions, newest first.
	ReadTransactions(ctx context.Context) ([]model.Transaction, error)
	// AppendTransaction durably adds one transaction. Records are never
	// mutated or deleted afterwards.
	AppendTransaction(ctx context.Context, tx model.Transaction) error
	// ReadBudgets returns the category -> limit snapshot.
	ReadBudgets(ctx context.Context) (model.Budgets, error)
	// WriteBudgets replaces the stored budget set.
	WriteBudgets(ctx context.Context, budgets model.Budgets) error

	Close() error
}
