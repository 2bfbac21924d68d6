package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderUsage() string {
	view := m.vms.Usage.Snapshot()

	var lines []string
	if badge := sourceBadge(view.Source, view.State, view.Err); badge != "" {
		lines = append(lines, strings.TrimRight(badge, "\n"))
	}

	s := view.Summary
	lines = append(lines,
		panelTitleStyle.Render(fmt.Sprintf("Token Usage (last %d days)", view.Window)),
		fmt.Sprintf("  Total tokens:   %s", formatNumber(s.TotalTokens)),
		fmt.Sprintf("  Input:          %s", formatNumber(s.InputTokens)),
		fmt.Sprintf("  Output:         %s", formatNumber(s.OutputTokens)),
		fmt.Sprintf("  Est. cost:      $%.2f", s.EstimatedCostUSD),
		fmt.Sprintf("  Avg per request: %.0f tokens", s.AvgTokensPerRequest),
		"",
	)

	lines = append(lines, panelTitleStyle.Render("Daily History"))
	if len(view.Daily) == 0 {
		lines = append(lines, dimStyle.Render("  No recorded history"))
	} else {
		lines = append(lines, fmt.Sprintf("  %-12s %12s %10s %10s", "Date", "Tokens", "Cost", "Requests"))
		lines = append(lines, dimStyle.Render("  "+strings.Repeat("─", 48)))
		for _, d := range view.Daily {
			lines = append(lines, fmt.Sprintf("  %-12s %12s %9.2f$ %10d",
				d.Date, formatNumber(d.TotalTokens), d.CostUSD, d.Requests))
		}
	}

	visibleH := m.height - 3
	visible := scrollWindow(lines, m.usageScrollPos, visibleH)
	return strings.Join(visible, "\n") + "\n"
}
