package metrics

import (
	"fmt"

	"github.com/pennywise-finance/pennywise/internal/model"
)

// unbudgetedSpendThreshold is the all-time spend, in minor units, above
// which an unbudgeted category earns an advisory (200.00).
const unbudgetedSpendThreshold = 20000

// Recommend generates heuristic advisory strings from the full
// transaction history and the budget snapshot. Unlike the other engine
// operations it is deliberately not scoped to the current month: the
// "significant spend without a budget" check looks at all-time totals.
// With no expenses and no budgets the result is empty and the caller
// shows a generic all-clear message.
//
// Order is stable for display: unbudgeted-category advisories in
// first-encounter order, then the top spending category (ties broken by
// encounter order).
func Recommend(txns []model.Transaction, budgets model.Budgets) []string {
	spend, order, err := SpendByCategory(txns)
	if err != nil {
		return nil
	}

	var recs []string
	for _, category := range order {
		if _, budgeted := budgets[category]; budgeted {
			continue
		}
		if spend[category] > unbudgetedSpendThreshold {
			recs = append(recs, fmt.Sprintf(
				"You've spent a significant amount in '%s' without a budget. Consider setting one to manage your spending.",
				category))
		}
	}

	if len(order) > 0 {
		top := order[0]
		for _, category := range order[1:] {
			if spend[category] > spend[top] {
				top = category
			}
		}
		recs = append(recs, fmt.Sprintf(
			"Your highest spending category is '%s'. Reviewing your spending here could be a good way to save money.",
			top))
	}

	return recs
}
