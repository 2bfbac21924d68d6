package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderModels() string {
	view := m.vms.Models.Snapshot()

	var lines []string
	if badge := sourceBadge(view.Source, view.State, view.Err); badge != "" {
		lines = append(lines, strings.TrimRight(badge, "\n"))
	}

	lines = append(lines, panelTitleStyle.Render("Models ("+view.Period+")"))
	if len(view.Rows) == 0 {
		lines = append(lines, dimStyle.Render("  No model data"))
	} else {
		lines = append(lines, fmt.Sprintf("  %-25s %8s %10s %12s %9s %8s",
			"Model", "Requests", "Avg Time", "Tokens", "Success", "Cost"))
		lines = append(lines, dimStyle.Render("  "+strings.Repeat("─", 76)))
		for _, row := range view.Rows {
			lines = append(lines, fmt.Sprintf("  %-25s %8d %8.0fms %12s %8.0f%% $%7.2f",
				truncateStr(row.Model, 25), row.Requests, row.AvgDurationMS,
				formatNumber(row.TotalTokens), row.SuccessRate*100, row.CostUSD))
		}
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("  Overall success: %s %.0f%%",
			renderProgressBar(view.OverallRate, 20), view.OverallRate*100))
	}

	visibleH := m.height - 3
	visible := scrollWindow(lines, m.modelsScroll, visibleH)
	return strings.Join(visible, "\n") + "\n"
}
