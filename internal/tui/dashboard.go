// Package tui implements the terminal dashboard.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pennywise-finance/pennywise/internal/cli"
	"github.com/pennywise-finance/pennywise/internal/metrics"
	"github.com/pennywise-finance/pennywise/internal/model"
)

const maxRecentTransactions = 10

// DashboardModel renders the monthly summary, budget gauges, and recent
// transactions. It is read-only: all data is computed before the
// program starts and the only interaction is quitting.
type DashboardModel struct {
	summary    metrics.Summary
	statuses   map[string]metrics.CategoryStatus
	categories []string
	recent     []model.Transaction
	month      string
	gauge      progress.Model
	width      int
}

// NewDashboardModel assembles a dashboard for ref's calendar month.
func NewDashboardModel(summary metrics.Summary, statuses map[string]metrics.CategoryStatus, txns []model.Transaction, ref time.Time) DashboardModel {
	categories := make([]string, 0, len(statuses))
	for category := range statuses {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	if len(txns) > maxRecentTransactions {
		txns = txns[:maxRecentTransactions]
	}

	gauge := progress.New(progress.WithDefaultGradient())
	gauge.ShowPercentage = false
	gauge.Width = 30

	return DashboardModel{
		summary:    summary,
		statuses:   statuses,
		categories: categories,
		recent:     txns,
		month:      ref.Format("January 2006"),
		gauge:      gauge,
	}
}

// Init implements tea.Model.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.gauge.Width = min(m.width-30, 40)
	}
	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render(fmt.Sprintf("Pennywise Dashboard: %s", m.month)))
	b.WriteString("\n\n")

	b.WriteString(m.renderSummary())
	b.WriteString("\n\n")
	b.WriteString(m.renderBudgets())
	b.WriteString("\n\n")
	b.WriteString(m.renderRecent())
	b.WriteString("\n\n")
	b.WriteString(cli.SubtleStyle.Render("press q to quit"))
	b.WriteString("\n")

	return b.String()
}

func (m DashboardModel) renderSummary() string {
	balanceStyle := cli.SuccessStyle
	if m.summary.Balance < 0 {
		balanceStyle = cli.ErrorStyle
	}
	line := fmt.Sprintf("%s  %s  %s",
		cli.SuccessStyle.Render(fmt.Sprintf("Income %s", model.FormatAmount(m.summary.Income))),
		cli.ErrorStyle.Render(fmt.Sprintf("Expenses %s", model.FormatAmount(m.summary.Expenses))),
		balanceStyle.Render(fmt.Sprintf("Balance %s", model.FormatAmount(m.summary.Balance))))
	return cli.PanelStyle.Render(line)
}

func (m DashboardModel) renderBudgets() string {
	var b strings.Builder
	b.WriteString(cli.BoldStyle.Render("Budget Status"))
	b.WriteString("\n")

	if len(m.categories) == 0 {
		b.WriteString(cli.SubtleStyle.Render("No budgets set."))
		return b.String()
	}

	for _, category := range m.categories {
		cs := m.statuses[category]
		pct := cs.Utilization
		if pct > 100 {
			pct = 100
		}
		b.WriteString(fmt.Sprintf("%-14s %s %6.1f%%  %s\n",
			category,
			m.gauge.ViewAs(pct/100),
			cs.Utilization,
			cli.StatusStyle(cs.Status).Render(string(cs.Status))))
		b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("  spent %s of %s, %s remaining",
			model.FormatAmount(cs.Spent),
			model.FormatAmount(cs.Limit),
			model.FormatAmount(cs.Remaining))))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m DashboardModel) renderRecent() string {
	var b strings.Builder
	b.WriteString(cli.BoldStyle.Render("Recent Transactions"))
	b.WriteString("\n")

	if len(m.recent) == 0 {
		b.WriteString(cli.SubtleStyle.Render("No transactions recorded yet."))
		return b.String()
	}

	for _, tx := range m.recent {
		amount := cli.AmountStyle(tx.Type).Render(model.FormatAmount(tx.Amount))
		desc := tx.Description
		if desc == "" {
			desc = cli.SubtleStyle.Render("(no description)")
		}
		b.WriteString(fmt.Sprintf("%s  %-8s %-14s %-30s %s\n",
			tx.Date.Format("2006-01-02"), tx.Type, tx.Category, desc, amount))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Run starts the dashboard program and blocks until the user quits.
func Run(m DashboardModel) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
