package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type SummaryRow struct {
	Label string
	Value string
}

// RenderSummary draws the end-of-run table: labels left-aligned, values
// right-aligned, framed by rules.
func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	labelCell := lipgloss.NewStyle().Width(labelWidth).Foreground(ColorInk)
	valueCell := lipgloss.NewStyle().Width(valueWidth).Align(lipgloss.Right).Bold(true).Foreground(ColorSuccess)

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s | %s", labelCell.Render(row.Label), valueCell.Render(row.Value)))
	}
	lines = append(lines, hline)

	return strings.Join(lines, "\n")
}
