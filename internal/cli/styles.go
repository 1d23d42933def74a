// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pennywise-finance/pennywise/internal/metrics"
	"github.com/pennywise-finance/pennywise/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#7FB069")
	// SuccessColor indicates healthy balances and on-track budgets.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates budgets approaching their limit.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates overspending and negative balances.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats positive amounts and confirmations.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warnings and advisory text.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats errors and negative amounts.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// PanelStyle draws a bordered box around summary output.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// HeaderStyle is used for table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))
)

// AmountStyle picks the style for a transaction amount: income renders
// green, expenses red.
func AmountStyle(kind model.Type) lipgloss.Style {
	if kind == model.TypeIncome {
		return SuccessStyle
	}
	return ErrorStyle
}

// StatusStyle picks the style for a budget status.
func StatusStyle(status metrics.Status) lipgloss.Style {
	switch status {
	case metrics.StatusOver:
		return ErrorStyle
	case metrics.StatusWarning:
		return WarningStyle
	default:
		return SuccessStyle
	}
}

// Bar renders a fixed-width utilization bar, filled proportionally to
// pct (clamped to [0, 100]).
func Bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct * float64(width) / 100)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
