package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-finance/pennywise/internal/cli"
	"github.com/pennywise-finance/pennywise/internal/metrics"
)

func adviseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advise",
		Short: "Show personalized recommendations",
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

			fmt.Fprintln(cmd.OutOrStdout(), cli.TitleStyle.Render("Personalized Recommendations"))
			renderRecommendations(cmd.OutOrStdout(), metrics.Recommend(txns, budgets))
			return nil
		},
	}
}
