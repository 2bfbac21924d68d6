package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderProjects() string {
	view := m.vms.Projects.Snapshot()

	var lines []string
	if badge := sourceBadge(view.Source, view.State, view.Err); badge != "" {
		lines = append(lines, strings.TrimRight(badge, "\n"))
	}

	lines = append(lines, panelTitleStyle.Render("Projects"))
	if len(view.Rows) == 0 {
		lines = append(lines, dimStyle.Render("  No project data"))
	} else {
		lines = append(lines, fmt.Sprintf("  %-20s %8s %12s %12s", "Project", "Agents", "Executions", "Avg Time"))
		lines = append(lines, dimStyle.Render("  "+strings.Repeat("─", 56)))
		for _, row := range view.Rows {
			project := row.ProjectID
			if project == "" {
				project = "(none)"
			}
			lines = append(lines, fmt.Sprintf("  %-20s %8d %12d %10.0fms",
				truncateStr(project, 20), row.AgentCount, row.TotalExecutions, row.AvgDurationMS))
		}
	}

	visibleH := m.height - 3
	visible := scrollWindow(lines, m.projectsScroll, visibleH)
	return strings.Join(visible, "\n") + "\n"
}
