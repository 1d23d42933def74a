package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/pennywise-finance/pennywise/internal/common"
	"github.com/pennywise-finance/pennywise/internal/service"
	"github.com/pennywise-finance/pennywise/internal/storage"
)

const ledgerDateLayout = "2006-01-02"

// dataDir resolves the ledger directory from config, defaulting to
// $HOME/.local/share/pennywise.
func dataDir() (string, error) {
	if dir := viper.GetString("data.dir"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "pennywise"), nil
}

// initStore opens the configured ledger backend.
func initStore() (service.LedgerStore, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}

	backend := viper.GetString("storage.backend")
	switch backend {
	case "", "flat":
		return storage.NewFlatFileStore(dir)
	case "sqlite":
		return storage.NewSQLiteStore(filepath.Join(dir, "pennywise.db"))
	default:
		return nil, common.NewUserError(
			fmt.Sprintf("unknown storage backend %q (want flat or sqlite)", backend),
			common.ErrInvalidConfig)
	}
}

// referenceTime returns the date treated as "now" for monthly views:
// the --as-of override when set, otherwise today. The metrics engine
// never reads a clock itself.
func referenceTime() (time.Time, error) {
	if asOf := viper.GetString("as_of"); asOf != "" {
		ref, err := time.Parse(ledgerDateLayout, asOf)
		if err != nil {
			return time.Time{}, common.NewUserError(
				fmt.Sprintf("invalid --as-of date %q (want YYYY-MM-DD)", asOf), err)
		}
		return ref, nil
	}
	return time.Now(), nil
}

// parseDateFlag parses an entry date, defaulting to today when empty.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(ledgerDateLayout, s)
	if err != nil {
		return time.Time{}, common.NewUserError(
			fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", s), err)
	}
	return date, nil
}
