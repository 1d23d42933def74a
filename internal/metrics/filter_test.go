package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-finance/pennywise/internal/model"
)

// tx builds a transaction for tests. Dates use UTC midnight like the
// ledger store produces.
func tx(kind model.Type, category string, amount int64, year int, month time.Month, day int) model.Transaction {
	return model.Transaction{
		Date:     time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		Type:     kind,
		Category: category,
		Amount:   amount,
	}
}

func TestForMonth(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 12, 30, 0, 0, time.UTC)
	txns := []model.Transaction{
		tx(model.TypeExpense, "Food", 100, 2025, time.June, 1),
		tx(model.TypeExpense, "Food", 200, 2025, time.May, 31),
		tx(model.TypeIncome, "Salary", 300, 2025, time.June, 30),
		tx(model.TypeExpense, "Bills", 400, 2024, time.June, 15),
		tx(model.TypeExpense, "Food", 500, 2025, time.July, 1),
	}

	got := ForMonth(txns, ref)
	require.Len(t, got, 2)
	// Input order is preserved.
	assert.Equal(t, int64(100), got[0].Amount)
	assert.Equal(t, int64(300), got[1].Amount)
}

func TestForMonthEmpty(t *testing.T) {
	assert.Empty(t, ForMonth(nil, time.Now()))
	assert.Empty(t, ForMonth([]model.Transaction{}, time.Now()))
}
