package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-finance/pennywise/internal/model"
)

var budgetRef = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestBudgetStatusClassification(t *testing.T) {
	tests := []struct {
		name       string
		limit      int64
		spent      int64
		wantStatus Status
		wantUtil   float64
	}{
		{name: "no spend", limit: 10000, spent: 0, wantStatus: StatusOK, wantUtil: 0},
		{name: "below warning", limit: 10000, spent: 6999, wantStatus: StatusOK, wantUtil: 69.99},
		{name: "exactly 70 percent", limit: 10000, spent: 7000, wantStatus: StatusWarning, wantUtil: 70},
		{name: "exactly at limit", limit: 10000, spent: 10000, wantStatus: StatusWarning, wantUtil: 100},
		{name: "just over limit", limit: 10000, spent: 10001, wantStatus: StatusOver, wantUtil: 100.01},
		{name: "zero limit never errors", limit: 0, spent: 5000, wantStatus: StatusOK, wantUtil: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budgets := model.Budgets{"Food": tt.limit}
			var txns []model.Transaction
			if tt.spent > 0 {
				txns = append(txns, tx(model.TypeExpense, "Food", tt.spent, 2025, time.June, 5))
			}

			statuses, err := BudgetStatus(budgets, txns, budgetRef)
			require.NoError(t, err)
			require.Contains(t, statuses, "Food")

			cs := statuses["Food"]
			assert.Equal(t, tt.wantStatus, cs.Status)
			assert.InDelta(t, tt.wantUtil, cs.Utilization, 1e-9)
			assert.Equal(t, tt.limit, cs.Limit)
			assert.Equal(t, tt.spent, cs.Spent)
			assert.Equal(t, tt.limit-tt.spent, cs.Remaining)
		})
	}
}

func TestBudgetStatusScopedToMonth(t *testing.T) {
	budgets := model.Budgets{"Food": 10000}
	txns := []model.Transaction{
		tx(model.TypeExpense, "Food", 4000, 2025, time.June, 1),
		tx(model.TypeExpense, "Food", 9000, 2025, time.May, 1), // previous month
		tx(model.TypeIncome, "Salary", 9000, 2025, time.June, 1),
	}

	statuses, err := BudgetStatus(budgets, txns, budgetRef)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), statuses["Food"].Spent)
	assert.Equal(t, StatusOK, statuses["Food"].Status)
}

func TestBudgetStatusUnbudgetedCategoriesExcluded(t *testing.T) {
	budgets := model.Budgets{"Food": 10000}
	txns := []model.Transaction{
		tx(model.TypeExpense, "Shopping", 9999, 2025, time.June, 1),
	}

	statuses, err := BudgetStatus(budgets, txns, budgetRef)
	require.NoError(t, err)
	assert.Len(t, statuses, 1)
	assert.NotContains(t, statuses, "Shopping")
}

// Status is monotonic in spend for a fixed limit: more spending can only
// move a category along OK -> Warning -> Over, never back.
func TestBudgetStatusMonotonicInSpend(t *testing.T) {
	rank := map[Status]int{StatusOK: 0, StatusWarning: 1, StatusOver: 2}
	budgets := model.Budgets{"Food": 1000}

	prevRank := -1
	prevUtil := -1.0
	for spent := int64(0); spent <= 1500; spent += 25 {
		var txns []model.Transaction
		if spent > 0 {
			txns = append(txns, tx(model.TypeExpense, "Food", spent, 2025, time.June, 5))
		}
		statuses, err := BudgetStatus(budgets, txns, budgetRef)
		require.NoError(t, err)

		cs := statuses["Food"]
		require.GreaterOrEqual(t, rank[cs.Status], prevRank, "status regressed at spend=%d", spent)
		require.GreaterOrEqual(t, cs.Utilization, prevUtil, "utilization regressed at spend=%d", spent)
		prevRank = rank[cs.Status]
		prevUtil = cs.Utilization
	}
}

func TestBudgetStatusRejectsNegativeLimit(t *testing.T) {
	_, err := BudgetStatus(model.Budgets{"Food": -1}, nil, budgetRef)
	require.ErrorIs(t, err, model.ErrNegativeLimit)
}

func TestBudgetStatusEmptyBudgets(t *testing.T) {
	statuses, err := BudgetStatus(model.Budgets{}, nil, budgetRef)
	require.NoError(t, err)
	assert.Empty(t, statuses)
}
