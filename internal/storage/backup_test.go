package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-finance/pennywise/internal/model"
)

func TestBackupAndRestore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFlatFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.AppendTransaction(ctx, testTransaction(1, 500)))
	require.NoError(t, store.WriteBudgets(ctx, model.Budgets{"Food": 50000}))

	archive, err := CreateBackup(dir, time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Contains(t, archive, "backup_20250615103000.zip")

	// Mutate the ledger after the backup.
	require.NoError(t, store.AppendTransaction(ctx, testTransaction(16, 999)))
	require.NoError(t, store.WriteBudgets(ctx, model.Budgets{"Bills": 1}))

	require.NoError(t, RestoreBackup(archive, dir))

	txns, err := store.ReadTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, int64(500), txns[0].Amount)

	budgets, err := store.ReadBudgets(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Budgets{"Food": 50000}, budgets)
}

func TestListBackups(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFlatFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.WriteBudgets(context.Background(), model.Budgets{"Food": 1}))

	// No backups yet.
	backups, err := ListBackups(dir)
	require.NoError(t, err)
	assert.Empty(t, backups)

	_, err = CreateBackup(dir, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = CreateBackup(dir, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	backups, err = ListBackups(dir)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	// Newest first.
	assert.Contains(t, backups[0], "20250602")
	assert.Contains(t, backups[1], "20250601")
}

func TestBackupExcludesEarlierBackups(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFlatFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.WriteBudgets(context.Background(), model.Budgets{"Food": 1}))

	_, err = CreateBackup(dir, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	second, err := CreateBackup(dir, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Restoring the second backup must not resurrect the first archive's
	// contents into the ledger directory; it only holds ledger files.
	require.NoError(t, RestoreBackup(second, dir))
	budgets, err := store.ReadBudgets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Budgets{"Food": 1}, budgets)
}
