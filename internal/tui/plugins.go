package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderPlugins() string {
	view := m.vms.Plugins.Snapshot()

	var lines []string
	if badge := sourceBadge(view.Source, view.State, view.Err); badge != "" {
		lines = append(lines, strings.TrimRight(badge, "\n"))
	}

	lines = append(lines, panelTitleStyle.Render(fmt.Sprintf("Plugins (%d)", len(view.Rows))))
	if len(view.Rows) == 0 {
		lines = append(lines, dimStyle.Render("  No plugins installed"))
	}

	for i, row := range view.Rows {
		p := row.Plugin

		marker := "▸"
		if row.Expanded {
			marker = "▾"
		}

		plain := fmt.Sprintf("  %s %-20s %-10s %s",
			marker, truncateStr(p.Name, 20), stateLabel(p.Enabled), truncateStr(p.Description, 50))

		line := plain
		switch {
		case i == m.pluginCursor:
			line = selectedStyle.Render(plain)
		case p.Enabled:
			line = okStyle.Render(plain)
		default:
			line = dimStyle.Render(plain)
		}
		lines = append(lines, line)

		if row.Expanded {
			if len(p.Commands) == 0 {
				lines = append(lines, dimStyle.Render("      (no commands)"))
			}
			for _, cmd := range p.Commands {
				lines = append(lines, dimStyle.Render(fmt.Sprintf("      /%s — %s",
					cmd.Name, cmd.Description)))
			}
		}
	}

	visibleH := m.height - 3
	visible := scrollWindow(lines, 0, visibleH)
	return strings.Join(visible, "\n") + "\n"
}

func stateLabel(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
