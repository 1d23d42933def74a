package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-finance/pennywise/internal/model"
)

var healthRef = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestSavingsRateScoreBands(t *testing.T) {
	tests := []struct {
		name     string
		income   int64
		expenses int64
		want     int
	}{
		{name: "zero income is worst case", income: 0, expenses: 500, want: 0},
		{name: "rate exactly 20", income: 1000, expenses: 800, want: 40},
		{name: "rate 19", income: 1000, expenses: 810, want: 30},
		{name: "rate exactly 10", income: 1000, expenses: 900, want: 30},
		{name: "rate 9", income: 1000, expenses: 910, want: 20},
		{name: "rate exactly 0", income: 1000, expenses: 1000, want: 20},
		{name: "negative rate", income: 1000, expenses: 1001, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, savingsRateScore(tt.income, tt.expenses))
		})
	}
}

func TestBudgetAdherenceScoreBands(t *testing.T) {
	tests := []struct {
		name    string
		spend   map[string]int64
		budgets model.Budgets
		want    int
	}{
		{name: "no budgets scores zero", spend: nil, budgets: model.Budgets{}, want: 0},
		{name: "nil budgets scores zero", spend: nil, budgets: nil, want: 0},
		// Degenerate configuration: budgets exist but none has a usable
		// limit. Deliberately more permissive than having no budgets.
		{name: "all zero limits score max", spend: nil, budgets: model.Budgets{"Food": 0, "Bills": 0}, want: 35},
		{name: "avg exactly 80", spend: map[string]int64{"Food": 8000}, budgets: model.Budgets{"Food": 10000}, want: 35},
		{name: "avg 85", spend: map[string]int64{"Food": 8500}, budgets: model.Budgets{"Food": 10000}, want: 25},
		{name: "avg exactly 90", spend: map[string]int64{"Food": 9000}, budgets: model.Budgets{"Food": 10000}, want: 25},
		{name: "avg 95", spend: map[string]int64{"Food": 9500}, budgets: model.Budgets{"Food": 10000}, want: 15},
		{name: "avg exactly 100", spend: map[string]int64{"Food": 10000}, budgets: model.Budgets{"Food": 10000}, want: 15},
		// Clamp: one category at 300% counts as 100, so the average with
		// an idle category is (100+0)/2 = 50, not 150.
		{
			name:    "overspend clamped before averaging",
			spend:   map[string]int64{"Food": 30000},
			budgets: model.Budgets{"Food": 10000, "Bills": 10000},
			want:    35,
		},
		{name: "unspent categories still count", spend: map[string]int64{"Food": 10000}, budgets: model.Budgets{"Food": 10000, "Bills": 10000, "Health": 10000}, want: 35},
		{name: "every category over", spend: map[string]int64{"Food": 10001}, budgets: model.Budgets{"Food": 10000}, want: 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, budgetAdherenceScore(tt.spend, tt.budgets))
		})
	}
}

func TestBudgetAdherenceClampCapsAverage(t *testing.T) {
	// The per-category clamp keeps the average at or below 100, so even
	// extreme overspend lands in the 15-point band, never below.
	got := budgetAdherenceScore(map[string]int64{"Food": 99999}, model.Budgets{"Food": 100})
	assert.Equal(t, 15, got)
}

func TestIncomeExpenseScoreBands(t *testing.T) {
	tests := []struct {
		name     string
		income   int64
		expenses int64
		want     int
	}{
		{name: "zero income", income: 0, expenses: 0, want: 0},
		{name: "income covers expenses", income: 1000, expenses: 999, want: 25},
		{name: "expenses above 90 percent of income", income: 1000, expenses: 1000, want: 10},
		{name: "expenses far above income", income: 1000, expenses: 5000, want: 10},
		{name: "expenses equal exactly 90 percent but income not greater", income: 1000, expenses: 900, want: 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, incomeExpenseScore(tt.income, tt.expenses))
		})
	}
}

func TestScoreComposite(t *testing.T) {
	txns := []model.Transaction{
		tx(model.TypeIncome, "Salary", 100000, 2025, time.June, 1),
		tx(model.TypeExpense, "Food", 50000, 2025, time.June, 5),
	}
	budgets := model.Budgets{"Food": 100000}

	got, err := Score(txns, budgets, healthRef)
	require.NoError(t, err)
	// Savings rate 50% -> 40; avg utilization 50 -> 35; income > expenses -> 25.
	assert.Equal(t, 40, got.SavingsRate)
	assert.Equal(t, 35, got.BudgetAdherence)
	assert.Equal(t, 25, got.IncomeExpense)
	assert.Equal(t, 100, got.Total)
	assert.Equal(t, InterpretationExcellent, got.Interpretation)
}

func TestScoreAllZeroInput(t *testing.T) {
	got, err := Score(nil, nil, healthRef)
	require.NoError(t, err)
	assert.Equal(t, HealthScore{Interpretation: InterpretationAttention}, got)
}

func TestScoreInterpretationBands(t *testing.T) {
	// Income with modest savings and no budgets: 30 + 0 + 25 = 55 -> Good.
	txns := []model.Transaction{
		tx(model.TypeIncome, "Salary", 1000, 2025, time.June, 1),
		tx(model.TypeExpense, "Food", 850, 2025, time.June, 5),
	}
	got, err := Score(txns, nil, healthRef)
	require.NoError(t, err)
	assert.Equal(t, 55, got.Total)
	assert.Equal(t, InterpretationGood, got.Interpretation)
}

func TestScoreAlwaysInRange(t *testing.T) {
	amounts := []int64{0, 1, 500, 1000, 100000}
	for _, income := range amounts {
		for _, expense := range amounts {
			var txns []model.Transaction
			if income > 0 {
				txns = append(txns, tx(model.TypeIncome, "Salary", income, 2025, time.June, 1))
			}
			if expense > 0 {
				txns = append(txns, tx(model.TypeExpense, "Food", expense, 2025, time.June, 2))
			}
			for _, budgets := range []model.Budgets{nil, {}, {"Food": 0}, {"Food": 750}} {
				got, err := Score(txns, budgets, healthRef)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, got.Total, 0)
				assert.LessOrEqual(t, got.Total, 100)
				assert.Equal(t, got.SavingsRate+got.BudgetAdherence+got.IncomeExpense, got.Total)
			}
		}
	}
}

func TestScoreUsesCurrentMonthOnly(t *testing.T) {
	txns := []model.Transaction{
		tx(model.TypeIncome, "Salary", 1000, 2025, time.May, 1),   // last month
		tx(model.TypeExpense, "Food", 99999, 2025, time.May, 20),  // last month
		tx(model.TypeIncome, "Salary", 1000, 2025, time.June, 1),
	}
	got, err := Score(txns, nil, healthRef)
	require.NoError(t, err)
	// This month: income 1000, no expenses -> 40 + 0 + 25.
	assert.Equal(t, 65, got.Total)
}

func TestScoreValidation(t *testing.T) {
	_, err := Score(nil, model.Budgets{"Food": -5}, healthRef)
	require.ErrorIs(t, err, model.ErrNegativeLimit)

	bad := []model.Transaction{tx(model.TypeIncome, "Salary", -10, 2025, time.June, 1)}
	_, err = Score(bad, nil, healthRef)
	require.ErrorIs(t, err, model.ErrInvalidAmount)
}
