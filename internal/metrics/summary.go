package metrics

import (
	"fmt"
	"time"

	"github.com/pennywise-finance/pennywise/internal/model"
)

// Summary holds the income, expense, and balance totals for one calendar
// month, in minor units. Balance may be negative.
type Summary struct {
	Income   int64
	Expenses int64
	Balance  int64
}

// Summarize totals the transactions falling in ref's calendar month.
// Sums are exact integer additions. The only error is a genuinely
// invalid input: a transaction carrying a negative amount.
func Summarize(txns []model.Transaction, ref time.Time) (Summary, error) {
	var s Summary
	for _, tx := range ForMonth(txns, ref) {
		if tx.Amount < 0 {
			return Summary{}, fmt.Errorf("transaction %q: %w", tx.Description, model.ErrInvalidAmount)
		}
		switch tx.Type {
		case model.TypeIncome:
			s.Income += tx.Amount
		case model.TypeExpense:
			s.Expenses += tx.Amount
		}
	}
	s.Balance = s.Income - s.Expenses
	return s, nil
}

// SpendByCategory sums expense amounts per category over the given
// transactions (no monthly scoping; callers filter first when they need
// it). The second return value lists categories in first-encounter
// order, since map iteration order is not stable.
func SpendByCategory(txns []model.Transaction) (map[string]int64, []string, error) {
	spend := make(map[string]int64)
	var order []string
	for _, tx := range txns {
		if tx.Amount < 0 {
			return nil, nil, fmt.Errorf("transaction %q: %w", tx.Description, model.ErrInvalidAmount)
		}
		if tx.Type != model.TypeExpense {
			continue
		}
		if _, seen := spend[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		spend[tx.Category] += tx.Amount
	}
	return spend, order, nil
}
