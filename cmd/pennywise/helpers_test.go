package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-finance/pennywise/internal/metrics"
	"github.com/pennywise-finance/pennywise/internal/model"
)

func TestBuildTransaction(t *testing.T) {
	tx, err := buildTransaction(model.TypeExpense, "12.50", "Food", "lunch", "2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, int64(1250), tx.Amount)
	assert.Equal(t, model.TypeExpense, tx.Type)
	assert.Equal(t, "Food", tx.Category)
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), tx.Date)
}

func TestBuildTransactionDefaultsDateToToday(t *testing.T) {
	tx, err := buildTransaction(model.TypeIncome, "500", "Salary", "", "")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(ledgerDateLayout), tx.Date.Format(ledgerDateLayout))
}

func TestBuildTransactionBadAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildTransaction(model.TypeExpense, tt.amount, "Food", "", "2026-03-15")
			require.Error(t, err)
		})
	}
}

func TestBuildTransactionUnknownCategory(t *testing.T) {
	_, err := buildTransaction(model.TypeExpense, "10", "Yachts", "", "2026-03-15")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnknownCategory))

	// Income categories are a separate set.
	_, err = buildTransaction(model.TypeIncome, "10", "Food", "", "2026-03-15")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnknownCategory))
}

func TestParseDateFlag(t *testing.T) {
	date, err := parseDateFlag("2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC), date)

	_, err = parseDateFlag("31/01/2026")
	require.Error(t, err)
}

func TestInterpretationMessage(t *testing.T) {
	assert.Contains(t, interpretationMessage(metrics.InterpretationExcellent), "Excellent")
	assert.Contains(t, interpretationMessage(metrics.InterpretationGood), "right track")
	assert.Contains(t, interpretationMessage(metrics.InterpretationAttention), "careful review")
}

func TestRenderTransactions(t *testing.T) {
	var buf bytes.Buffer
	renderTransactions(&buf, []model.Transaction{
		{
			Date:     time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			Type:     model.TypeExpense,
			Category: "Food",
			Amount:   1250,
		},
	})
	out := buf.String()
	assert.Contains(t, out, "2026-03-10")
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "12.50")
}

func TestRenderTransactionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	renderTransactions(&buf, nil)
	assert.Contains(t, buf.String(), "No transactions found")
}

func TestRenderRecommendations(t *testing.T) {
	var buf bytes.Buffer
	renderRecommendations(&buf, nil)
	assert.Contains(t, buf.String(), "Your finances are looking good!")

	buf.Reset()
	renderRecommendations(&buf, []string{"Spend less on Food."})
	assert.Contains(t, buf.String(), "Spend less on Food.")
}
