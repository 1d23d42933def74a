package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-finance/pennywise/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "pennywise.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	require.NoError(t, store.AppendTransaction(ctx, testTransaction(1, 500)))
	require.NoError(t, store.AppendTransaction(ctx, testTransaction(15, 750)))

	txns, err := store.ReadTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	// Newest first, date round-trips at day precision.
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), txns[0].Date)
	assert.Equal(t, int64(750), txns[0].Amount)
	assert.Equal(t, model.TypeExpense, txns[0].Type)
}

func TestSQLiteStoreSameDayOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	first := testTransaction(1, 100)
	second := testTransaction(1, 200)
	require.NoError(t, store.AppendTransaction(ctx, first))
	require.NoError(t, store.AppendTransaction(ctx, second))

	txns, err := store.ReadTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	// Later insert wins the tie on equal dates.
	assert.Equal(t, int64(200), txns[0].Amount)
}

func TestSQLiteStoreBudgets(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	budgets, err := store.ReadBudgets(ctx)
	require.NoError(t, err)
	assert.Empty(t, budgets)

	require.NoError(t, store.WriteBudgets(ctx, model.Budgets{"Food": 50000, "Bills": 20000}))
	budgets, err = store.ReadBudgets(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Budgets{"Food": 50000, "Bills": 20000}, budgets)

	// Replacement removes entries absent from the new set.
	require.NoError(t, store.WriteBudgets(ctx, model.Budgets{"Food": 60000}))
	budgets, err = store.ReadBudgets(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Budgets{"Food": 60000}, budgets)
}

func TestSQLiteStoreRejectsInvalidWrites(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	bad := testTransaction(1, 0)
	require.ErrorIs(t, store.AppendTransaction(ctx, bad), model.ErrInvalidAmount)
	require.ErrorIs(t, store.WriteBudgets(ctx, model.Budgets{"Food": -1}), model.ErrNegativeLimit)
}

func TestSQLiteStoreReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "pennywise.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.AppendTransaction(ctx, testTransaction(1, 500)))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	txns, err := reopened.ReadTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
}
