package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennywise-finance/pennywise/internal/cli"
	"github.com/pennywise-finance/pennywise/internal/metrics"
	"github.com/pennywise-finance/pennywise/internal/model"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Generate the monthly financial report",
		Long:  `Income by source, spending by category, savings, and recommendations for the current month.`,
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.TitleStyle.Render(
				fmt.Sprintf("Monthly Report: %s", ref.Format("January 2006"))))

			month := metrics.ForMonth(txns, ref)
			summary, err := metrics.Summarize(txns, ref)
			if err != nil {
				return err
			}

			renderIncomeSection(out, month)
			renderSpendingSection(out, month, ref)
			renderSavingsSection(out, summary)
			renderRecommendations(out, metrics.Recommend(txns, budgets))
			return nil
		},
	}
}

func renderIncomeSection(out io.Writer, month []model.Transaction) {
	fmt.Fprintln(out, cli.BoldStyle.Render("Income by source"))

	bySource := make(map[string]int64)
	var order []string
	var total int64
	for _, tx := range month {
		if tx.Type != model.TypeIncome {
			continue
		}
		if _, seen := bySource[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		bySource[tx.Category] += tx.Amount
		total += tx.Amount
	}

	if total == 0 {
		fmt.Fprintln(out, cli.SubtleStyle.Render("No income found for the current month."))
		fmt.Fprintln(out)
		return
	}
	for _, source := range order {
		fmt.Fprintf(out, "  %-14s %s\n", source, model.FormatAmount(bySource[source]))
	}
	fmt.Fprintf(out, "  %s\n\n", cli.SuccessStyle.Render(
		fmt.Sprintf("Total income this month: %s", model.FormatAmount(total))))
}

func renderSpendingSection(out io.Writer, month []model.Transaction, ref time.Time) {
	fmt.Fprintln(out, cli.BoldStyle.Render("Spending by category"))

	spend, _, err := metrics.SpendByCategory(month)
	if err != nil || len(spend) == 0 {
		fmt.Fprintln(out, cli.SubtleStyle.Render("No expenses found for the current month."))
		fmt.Fprintln(out)
		return
	}

	type categorySpend struct {
		name   string
		amount int64
	}
	var ranked []categorySpend
	var total int64
	for name, amount := range spend {
		ranked = append(ranked, categorySpend{name, amount})
		total += amount
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].amount != ranked[j].amount {
			return ranked[i].amount > ranked[j].amount
		}
		return ranked[i].name < ranked[j].name
	})

	for _, cs := range ranked {
		pct := float64(cs.amount) * 100 / float64(total)
		fmt.Fprintf(out, "  %-14s %s %5.1f%%\n", cs.name, cli.Bar(pct, 20), pct)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.BoldStyle.Render("Top spending categories"))
	for i, cs := range ranked {
		if i == 3 {
			break
		}
		fmt.Fprintf(out, "  %d. %s: %s\n", i+1, cs.name, model.FormatAmount(cs.amount))
	}

	// Average over the days elapsed so far, not the whole month.
	daysElapsed := int64(ref.Day())
	fmt.Fprintf(out, "  Average daily expense: %s\n\n", model.FormatAmount(total/daysElapsed))
}

func renderSavingsSection(out io.Writer, summary metrics.Summary) {
	fmt.Fprintln(out, cli.BoldStyle.Render("Savings"))

	if summary.Income == 0 {
		fmt.Fprintln(out, cli.SubtleStyle.Render("No income recorded this month; savings cannot be calculated."))
		fmt.Fprintln(out)
		return
	}

	rate := float64(summary.Balance) * 100 / float64(summary.Income)
	style := cli.SuccessStyle
	if summary.Balance < 0 {
		style = cli.ErrorStyle
	}
	fmt.Fprintf(out, "  Saved this month: %s\n", style.Render(model.FormatAmount(summary.Balance)))
	fmt.Fprintf(out, "  Savings rate:     %s\n\n", style.Render(fmt.Sprintf("%.2f%%", rate)))
}

func renderRecommendations(out io.Writer, recs []string) {
	fmt.Fprintln(out, cli.BoldStyle.Render("Recommendations"))
	if len(recs) == 0 {
		fmt.Fprintln(out, cli.SuccessStyle.Render(
			"Your finances are looking good! No specific recommendations at this time."))
		return
	}
	for _, rec := range recs {
		fmt.Fprintf(out, "  • %s\n", cli.WarningStyle.Render(rec))
	}
}
