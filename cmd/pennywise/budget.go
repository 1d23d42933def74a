package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pennywise-finance/pennywise/internal/cli"
	"github.com/pennywise-finance/pennywise/internal/common"
	"github.com/pennywise-finance/pennywise/internal/metrics"
	"github.com/pennywise-finance/pennywise/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly category budgets",
	}
	cmd.AddCommand(budgetSetCmd())
	cmd.AddCommand(budgetListCmd())
	cmd.AddCommand(budgetStatusCmd())
	return cmd
}

func budgetSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set the monthly budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, amountStr := args[0], args[1]

			if !model.KnownCategory(model.TypeExpense, category) {
				return common.NewUserError(
					fmt.Sprintf("unknown category %q (want one of: %s)",
						category, strings.Join(model.ExpenseCategories, ", ")),
					model.ErrUnknownCategory)
			}
			limit, err := model.ParseAmount(amountStr)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("invalid amount %q", amountStr), err)
			}

			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			budgets, err := store.ReadBudgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to read budgets: %w", err)
			}
			budgets[category] = limit
			if err := store.WriteBudgets(ctx, budgets); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(
				fmt.Sprintf("Budget for '%s' set to %s.", category, model.FormatAmount(limit))))
			return nil
		},
	}
}

func budgetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budgets, err := store.ReadBudgets(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to read budgets: %w", err)
			}
			if len(budgets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.SubtleStyle.Render(
					"No budgets set. Use 'pennywise budget set' to create one."))
				return nil
			}

			categories := make([]string, 0, len(budgets))
			for category := range budgets {
				categories = append(categories, category)
			}
			sort.Strings(categories)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\n", cli.HeaderStyle.Render("Category"), cli.HeaderStyle.Render("Monthly limit"))
			for _, category := range categories {
				fmt.Fprintf(w, "%s\t%s\n", category, model.FormatAmount(budgets[category]))
			}
			return w.Flush()
		},
	}
}

func budgetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show budget vs. spending for the current month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			budgets, err := store.ReadBudgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to read budgets: %w", err)
			}
			if len(budgets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.SubtleStyle.Render(
					"No budgets set. Use 'pennywise budget set' first."))
				return nil
			}
			txns, err := store.ReadTransactions(ctx)
			if err != nil {
				return fmt.Errorf("failed to read transactions: %w", err)
			}
			ref, err := referenceTime()
			if err != nil {
				return err
			}

			statuses, err := metrics.BudgetStatus(budgets, txns, ref)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.TitleStyle.Render(
				fmt.Sprintf("Budget for %s", ref.Format("January 2006"))))
			renderBudgetStatus(cmd.OutOrStdout(), statuses)
			return nil
		},
	}
}

func renderBudgetStatus(out io.Writer, statuses map[string]metrics.CategoryStatus) {
	categories := make([]string, 0, len(statuses))
	for category := range statuses {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Budget"),
		cli.HeaderStyle.Render("Spent"),
		cli.HeaderStyle.Render("Remaining"),
		cli.HeaderStyle.Render("Utilization"),
		cli.HeaderStyle.Render("Status"))

	for _, category := range categories {
		cs := statuses[category]
		style := cli.StatusStyle(cs.Status)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s %5.1f%%\t%s\n",
			category,
			model.FormatAmount(cs.Limit),
			style.Render(model.FormatAmount(cs.Spent)),
			model.FormatAmount(cs.Remaining),
			cli.Bar(cs.Utilization, 15),
			cs.Utilization,
			style.Render(string(cs.Status)))
	}
}
