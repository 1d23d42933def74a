package storage

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pennywise-finance/pennywise/internal/model"
)

const (
	transactionsFile = "transactions.txt"
	budgetsFile      = "budgets.txt"

	dateLayout = "2006-01-02"
)

// FlatFileStore keeps the ledger in two plain text files: an append-only
// transaction log (`date,kind,category,description,amount`) and a
// budgets file rewritten on every change. Malformed lines are skipped
// with a warning, never fatal.
//
// Known limitation: nothing locks the files, so two processes appending
// at once can interleave records. The SQLite backend avoids this.
type FlatFileStore struct {
	dir string
}

// NewFlatFileStore opens (creating if needed) the ledger directory.
func NewFlatFileStore(dir string) (*FlatFileStore, error) {
	if err := validateString(dir, "dir"); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}
	return &FlatFileStore{dir: dir}, nil
}

// Dir returns the ledger directory, used by backup and export.
func (s *FlatFileStore) Dir() string {
	return s.dir
}

// Close is a no-op; files are opened per operation.
func (s *FlatFileStore) Close() error {
	return nil
}

// ReadTransactions reads the full transaction log, newest first.
// A missing file is an empty ledger.
func (s *FlatFileStore) ReadTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, transactionsFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open transaction log: %w", err)
	}
	defer func() { _ = f.Close() }()

	var txns []model.Transaction
	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tx, err := parseTransactionRecord(line)
		if err != nil {
			slog.Warn("skipping malformed transaction record",
				"file", path, "line", lineNum, "error", err)
			continue
		}
		txns = append(txns, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction log: %w", err)
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
	return txns, nil
}

// AppendTransaction adds one validated record to the log.
func (s *FlatFileStore) AppendTransaction(ctx context.Context, tx model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("refusing to append invalid transaction: %w", err)
	}

	path := filepath.Join(s.dir, transactionsFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open transaction log: %w", err)
	}
	defer func() { _ = f.Close() }()

	record := fmt.Sprintf("%s,%s,%s,%s,%d\n",
		tx.Date.Format(dateLayout), tx.Type, tx.Category, tx.Description, tx.Amount)
	if _, err := f.WriteString(record); err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}
	return nil
}

// ReadBudgets reads the budget snapshot. Malformed lines are skipped.
func (s *FlatFileStore) ReadBudgets(ctx context.Context) (model.Budgets, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, budgetsFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Budgets{}, nil
		}
		return nil, fmt.Errorf("failed to open budgets file: %w", err)
	}
	defer func() { _ = f.Close() }()

	budgets := model.Budgets{}
	scanner := bufio.NewScanner(f)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		category, limit, err := parseBudgetRecord(line)
		if err != nil {
			slog.Warn("skipping malformed budget record",
				"file", path, "line", lineNum, "error", err)
			continue
		}
		budgets[category] = limit
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read budgets file: %w", err)
	}
	return budgets, nil
}

// WriteBudgets replaces the budget file. The write goes through a temp
// file and rename so a crash cannot leave a half-written snapshot.
func (s *FlatFileStore) WriteBudgets(ctx context.Context, budgets model.Budgets) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := budgets.Validate(); err != nil {
		return fmt.Errorf("refusing to write invalid budgets: %w", err)
	}

	categories := make([]string, 0, len(budgets))
	for category := range budgets {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var sb strings.Builder
	for _, category := range categories {
		fmt.Fprintf(&sb, "%s,%d\n", category, budgets[category])
	}

	path := filepath.Join(s.dir, budgetsFile)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write budgets file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace budgets file: %w", err)
	}
	return nil
}

func parseTransactionRecord(line string) (model.Transaction, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 5 {
		return model.Transaction{}, fmt.Errorf("expected 5 fields, got %d", len(parts))
	}

	date, err := time.Parse(dateLayout, parts[0])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("bad date %q: %w", parts[0], err)
	}
	amount, err := strconv.ParseInt(parts[4], 10, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("bad amount %q: %w", parts[4], err)
	}

	tx := model.Transaction{
		Date:        date,
		Type:        model.Type(parts[1]),
		Category:    parts[2],
		Description: parts[3],
		Amount:      amount,
	}
	if err := tx.Validate(); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

func parseBudgetRecord(line string) (string, int64, error) {
	category, limitStr, ok := strings.Cut(line, ",")
	if !ok {
		return "", 0, fmt.Errorf("expected 2 fields")
	}
	if strings.TrimSpace(category) == "" {
		return "", 0, model.ErrEmptyCategory
	}
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad limit %q: %w", limitStr, err)
	}
	if limit < 0 {
		return "", 0, model.ErrNegativeLimit
	}
	return category, limit, nil
}
