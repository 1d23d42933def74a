package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pennywise-finance/pennywise/internal/cli"
	"github.com/pennywise-finance/pennywise/internal/model"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all transactions",
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

			renderTransactions(cmd.OutOrStdout(), txns)
			return nil
		},
	}
}

func renderTransactions(out io.Writer, txns []model.Transaction) {
	if len(txns) == 0 {
		fmt.Fprintln(out, cli.SubtleStyle.Render("No transactions found."))
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Date"),
		cli.HeaderStyle.Render("Type"),
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Description"),
		cli.HeaderStyle.Render("Amount"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 10),
		strings.Repeat("-", 7),
		strings.Repeat("-", 14),
		strings.Repeat("-", 30),
		strings.Repeat("-", 10))

	for _, tx := range txns {
		style := cli.AmountStyle(tx.Type)
		desc := tx.Description
		if desc == "" {
			desc = cli.SubtleStyle.Render("(no description)")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			tx.Date.Format(ledgerDateLayout),
			style.Render(string(tx.Type)),
			tx.Category,
			desc,
			style.Render(model.FormatAmount(tx.Amount)))
	}
}
