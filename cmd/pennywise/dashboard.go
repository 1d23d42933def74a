package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-finance/pennywise/internal/metrics"
	"github.com/pennywise-finance/pennywise/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long:  `A full-screen view of the monthly summary, budget gauges, and recent transactions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			txns, err := store.ReadTransactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to read transactions: %w", err)
			}
			budgets, err := store.ReadBudgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to read budgets: %w", err)
			}
			ref, err := referenceTime()
			if err != nil {
				return err
			}

			summary, err := metrics.Summarize(txns, ref)
			if err != nil {
				return err
			}
			statuses, err := metrics.BudgetStatus(budgets, txns, ref)
			if err != nil {
				return err
			}

			return tui.Run(tui.NewDashboardModel(summary, statuses, txns, ref))
		},
	}
}
