// Package metrics is the derived-metrics engine: pure functions that turn
// a transaction snapshot and a budget snapshot into monthly summaries,
// budget statuses, a composite financial health score, and heuristic
// advisory signals. Every function takes its inputs explicitly, including
// the reference time used for monthly scoping; nothing here reads a clock,
// touches storage, or keeps state between calls. Both front ends consume
// this single engine so their numbers can never drift apart.
package metrics

import (
	"time"

	"github.com/pennywise-finance/pennywise/internal/model"
)

// ForMonth returns the transactions dated in the same calendar year and
// month as ref, preserving input order.
func ForMonth(txns []model.Transaction, ref time.Time) []model.Transaction {
	year, month := ref.Year(), ref.Month()
	var out []model.Transaction
	for _, tx := range txns {
		if tx.Date.Year() == year && tx.Date.Month() == month {
			out = append(out, tx)
		}
	}
	return out
}
