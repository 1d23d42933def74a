package storage

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/pennywise-finance/pennywise/internal/model"
	"github.com/pennywise-finance/pennywise/internal/service"
)

// transactionExport is the JSON shape of one exported transaction.
type transactionExport struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

// budgetExport is the JSON shape of one exported budget entry.
type budgetExport struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// ExportCSV writes the ledger to two CSV files. It reads through the
// store interface, so it works against any backend.
func ExportCSV(ctx context.Context, store service.LedgerStore, transactionsPath, budgetsPath string) error {
	txns, err := store.ReadTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to read transactions: %w", err)
	}
	budgets, err := store.ReadBudgets(ctx)
	if err != nil {
		return fmt.Errorf("failed to read budgets: %w", err)
	}

	txRows := [][]string{{"Date", "Type", "Category", "Description", "Amount"}}
	for _, tx := range txns {
		txRows = append(txRows, []string{
			tx.Date.Format(dateLayout),
			string(tx.Type),
			tx.Category,
			tx.Description,
			strconv.FormatInt(tx.Amount, 10),
		})
	}
	if err := writeCSV(transactionsPath, txRows); err != nil {
		return err
	}

	budgetRows := [][]string{{"Category", "Amount"}}
	for _, category := range sortedCategories(budgets) {
		budgetRows = append(budgetRows, []string{category, strconv.FormatInt(budgets[category], 10)})
	}
	return writeCSV(budgetsPath, budgetRows)
}

// ExportJSON writes the whole ledger to a single JSON file.
func ExportJSON(ctx context.Context, store service.LedgerStore, path string) error {
	txns, err := store.ReadTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to read transactions: %w", err)
	}
	budgets, err := store.ReadBudgets(ctx)
	if err != nil {
		return fmt.Errorf("failed to read budgets: %w", err)
	}

	payload := struct {
		Transactions []transactionExport `json:"transactions"`
		Budgets      []budgetExport      `json:"budgets"`
	}{
		Transactions: make([]transactionExport, 0, len(txns)),
		Budgets:      make([]budgetExport, 0, len(budgets)),
	}
	for _, tx := range txns {
		payload.Transactions = append(payload.Transactions, transactionExport{
			Date:        tx.Date.Format(dateLayout),
			Type:        string(tx.Type),
			Category:    tx.Category,
			Description: tx.Description,
			Amount:      tx.Amount,
		})
	}
	for _, category := range sortedCategories(budgets) {
		payload.Budgets = append(payload.Budgets, budgetExport{
			Category: category,
			Amount:   budgets[category],
		})
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return f.Close()
}

func sortedCategories(budgets model.Budgets) []string {
	categories := make([]string, 0, len(budgets))
	for category := range budgets {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
