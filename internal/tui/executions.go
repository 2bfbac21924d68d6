package tui

import (
	"fmt"
	"strings"

	"github.com/routelab/agenttop/internal/platform"
	"github.com/routelab/agenttop/internal/recfilter"
	"github.com/routelab/agenttop/internal/viewmodel"
)

func (m Model) renderExecutions() string {
	view := m.vms.Executions.Snapshot()

	var lines []string
	if badge := sourceBadge(view.Source, view.State, view.Err); badge != "" {
		lines = append(lines, strings.TrimRight(badge, "\n"))
	}

	searchLine := "  Search: "
	if m.searchFocused {
		searchLine += m.searchInput.View()
	} else if view.Search != "" {
		searchLine += view.Search
	} else {
		searchLine += dimStyle.Render("(press / to search)")
	}
	if view.Status != recfilter.StatusAll {
		searchLine += "   Status: " + view.Status
	}
	lines = append(lines, searchLine)

	lines = append(lines, panelTitleStyle.Render(
		fmt.Sprintf("Executions (%d of %d)", len(view.Rows), view.Total)))

	if len(view.Rows) == 0 {
		lines = append(lines, dimStyle.Render("  No matching executions"))
	}

	for i, row := range view.Rows {
		lines = append(lines, m.renderExecutionRow(row, i == m.execCursor)...)
	}

	visibleH := m.height - 3
	visible := scrollWindow(lines, m.cursorScroll(visibleH, len(lines)), visibleH)
	return strings.Join(visible, "\n") + "\n"
}

// cursorScroll keeps the cursor row inside the visible window.
func (m Model) cursorScroll(visibleH, total int) int {
	if m.execCursor <= visibleH-4 {
		return 0
	}
	pos := m.execCursor - (visibleH - 4)
	if pos > total-visibleH {
		pos = total - visibleH
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}

func (m Model) renderExecutionRow(row viewmodel.ExecutionRow, selected bool) []string {
	r := row.Record

	marker := "▸"
	if row.Expanded {
		marker = "▾"
	}

	line := fmt.Sprintf("  %s %s %-10s %-50s %8.0fms",
		marker, statusGlyph(r.Status), truncateStr(r.AgentID, 10), truncateStr(r.Prompt, 50), r.DurationMS)
	if selected {
		line = selectedStyle.Render(line)
	}

	lines := []string{line}
	if !row.Expanded {
		return lines
	}

	detail := []string{
		"      ID:      " + r.ID,
		"      Created: " + r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if r.Model != "" {
		detail = append(detail, "      Model:   "+r.Model)
	}
	if r.ProjectID != "" {
		detail = append(detail, "      Project: "+r.ProjectID)
	}
	if r.InputTokens > 0 || r.OutputTokens > 0 {
		detail = append(detail, fmt.Sprintf("      Tokens:  %s in / %s out  $%.4f",
			formatNumber(r.InputTokens), formatNumber(r.OutputTokens), r.CostUSD))
	}
	if r.Error != "" {
		detail = append(detail, errStyle.Render("      Error:   "+r.Error))
	} else if r.Result != "" {
		detail = append(detail, "      Result:  "+truncateStr(r.Result, 80))
	}
	for _, d := range detail {
		lines = append(lines, dimStyle.Render(d))
	}
	return lines
}

func statusGlyph(status platform.ExecutionStatus) string {
	switch status {
	case platform.StatusSuccess:
		return okStyle.Render("✓")
	case platform.StatusError:
		return errStyle.Render("✗")
	case platform.StatusRunning:
		return warnStyle.Render("⟳")
	}
	return "?"
}
