package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-finance/pennywise/internal/cli"
	"github.com/pennywise-finance/pennywise/internal/metrics"
)

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show the financial health score",
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

			hs, err := metrics.Score(txns, budgets, ref)
			if err != nil {
				return err
			}

			totalStyle := cli.ErrorStyle
			switch {
			case hs.Total >= 75:
				totalStyle = cli.SuccessStyle
			case hs.Total >= 50:
				totalStyle = cli.WarningStyle
			}

			panel := fmt.Sprintf(
				"Savings rate score:       %2d / 40\n"+
					"Budget adherence score:   %2d / 35\n"+
					"Income vs. expense score: %2d / 25\n"+
					"%s",
				hs.SavingsRate, hs.BudgetAdherence, hs.IncomeExpense,
				totalStyle.Render(cli.BoldStyle.Render(fmt.Sprintf("Overall score: %d / 100", hs.Total))))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.TitleStyle.Render("Financial Health Score"))
			fmt.Fprintln(out, cli.PanelStyle.Render(panel))
			fmt.Fprintln(out, totalStyle.Render(interpretationMessage(hs.Interpretation)))
			return nil
		},
	}
}

func interpretationMessage(interpretation string) string {
	switch interpretation {
	case metrics.InterpretationExcellent:
		return "Excellent! Your finances are in great shape. Keep up the good work!"
	case metrics.InterpretationGood:
		return "Good. There's room for improvement, but you're on the right track."
	default:
		return "Needs Attention. Your finances require careful review. Focus on budgeting and saving."
	}
}
