package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/pennywise-finance/pennywise/internal/model"
)

// SQLiteStore implements the LedgerStore contract on SQLite. It exists
// for ledgers that have outgrown flat files: WAL mode gives it the
// concurrent-writer safety the text files cannot offer.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (creating if needed) the database and brings the
// schema up to date.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			type TEXT NOT NULL,
			category TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			amount INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date)`,
		`CREATE TABLE IF NOT EXISTS budgets (
			category TEXT PRIMARY KEY,
			limit_minor INTEGER NOT NULL
		)`,
	}
	for _, q := range queries {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}
	return nil
}

// ReadTransactions returns all transactions, newest first.
func (s *SQLiteStore) ReadTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, type, category, description, amount
		FROM transactions
		ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var dateStr string
		var tx model.Transaction
		if err := rows.Scan(&dateStr, &tx.Type, &tx.Category, &tx.Description, &tx.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		tx.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("bad stored date %q: %w", dateStr, err)
		}
		txns = append(txns, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return txns, nil
}

// AppendTransaction inserts one validated record.
func (s *SQLiteStore) AppendTransaction(ctx context.Context, tx model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("refusing to append invalid transaction: %w", err)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (date, type, category, description, amount)
		VALUES (?, ?, ?, ?, ?)`,
		tx.Date.Format(dateLayout), string(tx.Type), tx.Category, tx.Description, tx.Amount)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// ReadBudgets returns the category -> limit snapshot.
func (s *SQLiteStore) ReadBudgets(ctx context.Context) (model.Budgets, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT category, limit_minor FROM budgets`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	budgets := model.Budgets{}
	for rows.Next() {
		var category string
		var limit int64
		if err := rows.Scan(&category, &limit); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets[category] = limit
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read budgets: %w", err)
	}
	return budgets, nil
}

// WriteBudgets replaces the stored budget set in one transaction.
func (s *SQLiteStore) WriteBudgets(ctx context.Context, budgets model.Budgets) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := budgets.Validate(); err != nil {
		return fmt.Errorf("refusing to write invalid budgets: %w", err)
	}

	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = dbTx.Rollback() }()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM budgets`); err != nil {
		return fmt.Errorf("failed to clear budgets: %w", err)
	}
	for category, limit := range budgets {
		if _, err := dbTx.ExecContext(ctx,
			`INSERT INTO budgets (category, limit_minor) VALUES (?, ?)`, category, limit); err != nil {
			return fmt.Errorf("failed to insert budget for %s: %w", category, err)
		}
	}
	return dbTx.Commit()
}
