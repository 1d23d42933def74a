package metrics

import (
	"time"

	"github.com/pennywise-finance/pennywise/internal/model"
)

// Status classifies a budgeted category's utilization.
type Status string

const (
	// StatusOK means spending is comfortably below the limit.
	StatusOK Status = "OK"
	// StatusWarning means utilization has reached 70% of the limit.
	StatusWarning Status = "Warning"
	// StatusOver means spending strictly exceeds the limit.
	StatusOver Status = "Over"
)

// CategoryStatus describes one budgeted category for the reference month.
// Remaining may be negative. Utilization is a percentage; it is reported
// as a float for display but classified with integer arithmetic.
type CategoryStatus struct {
	Limit       int64
	Spent       int64
	Remaining   int64
	Utilization float64
	Status      Status
}

// BudgetStatus classifies every budgeted category against spending in
// ref's calendar month. Categories with transactions but no budget are
// not reported here; Recommend surfaces that gap instead. A zero limit
// yields zero utilization rather than an error; a negative limit or
// amount is a validation error.
//
// Classification, first match wins: utilization strictly above 100 is
// Over, at or above 70 is Warning, otherwise OK. The Warning boundary is
// inclusive so a category sitting exactly at 70% is flagged early, while
// an exact-limit spend is not penalized as Over.
func BudgetStatus(budgets model.Budgets, txns []model.Transaction, ref time.Time) (map[string]CategoryStatus, error) {
	if err := budgets.Validate(); err != nil {
		return nil, err
	}
	spend, _, err := SpendByCategory(ForMonth(txns, ref))
	if err != nil {
		return nil, err
	}

	statuses := make(map[string]CategoryStatus, len(budgets))
	for category, limit := range budgets {
		spent := spend[category]
		cs := CategoryStatus{
			Limit:     limit,
			Spent:     spent,
			Remaining: limit - spent,
		}
		if limit > 0 {
			cs.Utilization = float64(spent) * 100 / float64(limit)
		}
		switch {
		case limit > 0 && spent > limit:
			cs.Status = StatusOver
		case limit > 0 && spent*10 >= limit*7:
			cs.Status = StatusWarning
		default:
			cs.Status = StatusOK
		}
		statuses[category] = cs
	}
	return statuses, nil
}
