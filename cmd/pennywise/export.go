package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pennywise-finance/pennywise/internal/cli"
	"github.com/pennywise-finance/pennywise/internal/storage"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger",
	}
	cmd.AddCommand(exportCSVCmd())
	cmd.AddCommand(exportJSONCmd())
	return cmd
}

func exportCSVCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export transactions and budgets to CSV files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txPath := filepath.Join(outDir, "transactions_export.csv")
			budgetPath := filepath.Join(outDir, "budgets_export.csv")
			if err := storage.ExportCSV(cmd.Context(), store, txPath, budgetPath); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(
				fmt.Sprintf("Exported transactions to %s and budgets to %s.", txPath, budgetPath)))
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "dir", ".", "output directory")
	return cmd
}

func exportJSONCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "json",
		Short: "Export the whole ledger to a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := storage.ExportJSON(cmd.Context(), store, outPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(
				fmt.Sprintf("Exported ledger to %s.", outPath)))
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "pennywise_export.json", "output file")
	return cmd
}
