package metrics

import (
	"time"

	"github.com/pennywise-finance/pennywise/internal/model"
)

// Interpretation bands for the composite score.
const (
	InterpretationExcellent = "Excellent"
	InterpretationGood      = "Good"
	InterpretationAttention = "Needs Attention"
)

// HealthScore is the 0-100 composite financial health score with its
// three sub-scores.
type HealthScore struct {
	SavingsRate     int // 0-40
	BudgetAdherence int // 0-35
	IncomeExpense   int // 0-25
	Total           int // 0-100
	Interpretation  string
}

// Score computes the financial health score from ref's calendar month.
// It is total for every combination of empty and zero inputs; the only
// errors are genuinely invalid inputs (negative amounts or limits).
func Score(txns []model.Transaction, budgets model.Budgets, ref time.Time) (HealthScore, error) {
	if err := budgets.Validate(); err != nil {
		return HealthScore{}, err
	}
	month := ForMonth(txns, ref)
	summary, err := Summarize(txns, ref)
	if err != nil {
		return HealthScore{}, err
	}
	spend, _, err := SpendByCategory(month)
	if err != nil {
		return HealthScore{}, err
	}

	hs := HealthScore{
		SavingsRate:     savingsRateScore(summary.Income, summary.Expenses),
		BudgetAdherence: budgetAdherenceScore(spend, budgets),
		IncomeExpense:   incomeExpenseScore(summary.Income, summary.Expenses),
	}
	hs.Total = hs.SavingsRate + hs.BudgetAdherence + hs.IncomeExpense
	switch {
	case hs.Total >= 75:
		hs.Interpretation = InterpretationExcellent
	case hs.Total >= 50:
		hs.Interpretation = InterpretationGood
	default:
		hs.Interpretation = InterpretationAttention
	}
	return hs, nil
}

// savingsRateScore bands the monthly savings rate. Zero income scores
// zero: an undefined rate is treated as the worst case. The comparisons
// stay in integers so band edges are exact (saved*5 >= income is
// rate >= 20%, saved*10 >= income is rate >= 10%).
func savingsRateScore(income, expenses int64) int {
	if income == 0 {
		return 0
	}
	saved := income - expenses
	switch {
	case saved*5 >= income:
		return 40
	case saved*10 >= income:
		return 30
	case saved >= 0:
		return 20
	default:
		return 0
	}
}

// budgetAdherenceScore bands the average utilization across budgeted
// categories. Per-category utilization is clamped at 100 before
// averaging so one wildly over-spent category cannot mask others.
// Categories with no spend still count toward the average.
//
// Two deliberate quirks of the observed policy are preserved here: no
// budgets at all scores 0 (absence of budgeting is itself penalized,
// distinct from perfect adherence), while a non-empty budget map whose
// limits are all zero scores the full 35.
func budgetAdherenceScore(spend map[string]int64, budgets model.Budgets) int {
	if len(budgets) == 0 {
		return 0
	}

	var utilizationSum float64
	var eligible int
	for category, limit := range budgets {
		if limit <= 0 {
			continue
		}
		utilization := float64(spend[category]) * 100 / float64(limit)
		if utilization > 100 {
			utilization = 100
		}
		utilizationSum += utilization
		eligible++
	}
	if eligible == 0 {
		return 35
	}

	avg := utilizationSum / float64(eligible)
	switch {
	case avg <= 80:
		return 35
	case avg <= 90:
		return 25
	case avg <= 100:
		return 15
	default:
		return 5
	}
}

// incomeExpenseScore rewards income covering expenses. The middle band
// (expenses above 90% of income while income has not strictly exceeded
// expenses) compares income*9 against expenses*10 to avoid a float
// threshold.
func incomeExpenseScore(income, expenses int64) int {
	if income == 0 {
		return 0
	}
	switch {
	case income > expenses:
		return 25
	case income*9 < expenses*10:
		return 10
	default:
		return 0
	}
}
