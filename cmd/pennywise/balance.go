package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-finance/pennywise/internal/cli"
	"github.com/pennywise-finance/pennywise/internal/model"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the all-time balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.ReadTransactions(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to read transactions: %w", err)
			}

			var income, expenses int64
			for _, tx := range txns {
				switch tx.Type {
				case model.TypeIncome:
					income += tx.Amount
				case model.TypeExpense:
					expenses += tx.Amount
				}
			}
			balance := income - expenses

			balanceStyle := cli.SuccessStyle
			if balance < 0 {
				balanceStyle = cli.ErrorStyle
			}
			panel := fmt.Sprintf("%s\n%s\n%s",
				cli.SuccessStyle.Render(fmt.Sprintf("Total income:    %s", model.FormatAmount(income))),
				cli.ErrorStyle.Render(fmt.Sprintf("Total expenses:  %s", model.FormatAmount(expenses))),
				balanceStyle.Render(cli.BoldStyle.Render(fmt.Sprintf("Current balance: %s", model.FormatAmount(balance)))))

			fmt.Fprintln(cmd.OutOrStdout(), cli.PanelStyle.Render(panel))
			return nil
		},
	}
}
