package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pennywise-finance/pennywise/internal/cli"
	"github.com/pennywise-finance/pennywise/internal/common"
	"github.com/pennywise-finance/pennywise/internal/metrics"
	"github.com/pennywise-finance/pennywise/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
	}
	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(addIncomeCmd())
	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		amountStr   string
		category    string
		description string
		dateStr     string
	)

	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record an expense",
		Long:  `Record an expense transaction. Unusually large amounts for the category are flagged after saving.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tx, err := buildTransaction(model.TypeExpense, amountStr, category, description, dateStr)
			if err != nil {
				return err
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			// Read history before appending so the new record is not
			// part of its own baseline.
			history, err := store.ReadTransactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to read transactions: %w", err)
			}

			if err := store.AppendTransaction(ctx, tx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render("Expense added successfully."))

			if metrics.IsUnusual(history, tx) {
				fmt.Fprintln(cmd.OutOrStdout(), cli.WarningStyle.Render(
					fmt.Sprintf("Warning: this spending is unusually high for the '%s' category.", tx.Category)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "amount, e.g. 12.50")
	cmd.Flags().StringVar(&category, "category", "", "expense category ("+strings.Join(model.ExpenseCategories, ", ")+")")
	cmd.Flags().StringVar(&description, "description", "", "free-form description (no commas)")
	cmd.Flags().StringVar(&dateStr, "date", "", "date (YYYY-MM-DD, default: today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func addIncomeCmd() *cobra.Command {
	var (
		amountStr   string
		source      string
		description string
		dateStr     string
	)

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Record income",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tx, err := buildTransaction(model.TypeIncome, amountStr, source, description, dateStr)
			if err != nil {
				return err
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.AppendTransaction(cmd.Context(), tx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render("Income added successfully."))
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "amount, e.g. 500.00")
	cmd.Flags().StringVar(&source, "source", "", "income source ("+strings.Join(model.IncomeCategories, ", ")+")")
	cmd.Flags().StringVar(&description, "description", "", "free-form description (no commas)")
	cmd.Flags().StringVar(&dateStr, "date", "", "date (YYYY-MM-DD, default: today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func buildTransaction(kind model.Type, amountStr, category, description, dateStr string) (model.Transaction, error) {
	amount, err := model.ParseAmount(amountStr)
	if err != nil {
		return model.Transaction{}, common.NewUserError(
			fmt.Sprintf("invalid amount %q", amountStr), err)
	}

	if !model.KnownCategory(kind, category) {
		valid := model.ExpenseCategories
		if kind == model.TypeIncome {
			valid = model.IncomeCategories
		}
		return model.Transaction{}, common.NewUserError(
			fmt.Sprintf("unknown category %q (want one of: %s)", category, strings.Join(valid, ", ")),
			model.ErrUnknownCategory)
	}

	date, err := parseDateFlag(dateStr)
	if err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{
		Date:        date,
		Type:        kind,
		Category:    category,
		Description: description,
		Amount:      amount,
	}
	if err := tx.Validate(); err != nil {
		return model.Transaction{}, common.NewUserError("invalid transaction", err)
	}
	return tx, nil
}
