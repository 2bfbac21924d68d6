package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/routelab/agenttop/internal/query"
	"github.com/routelab/agenttop/internal/viewmodel"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62"))

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("69"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("82"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	errStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	demoBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226"))

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)
)

func (m Model) renderHeader() string {
	title := " agenttop"
	viewLabel := " [" + m.view.label() + "]"

	indicators := m.headerIndicators()
	help := m.headerHelp()

	padding := m.width - lipgloss.Width(title) - lipgloss.Width(viewLabel) - lipgloss.Width(indicators) - lipgloss.Width(help)
	if padding < 0 {
		padding = 0
	}

	return headerStyle.Width(m.width).Render(title + viewLabel + indicators + strings.Repeat(" ", padding) + help)
}

func (m Model) headerIndicators() string {
	var parts []string
	if !m.isPersistent {
		parts = append(parts, "[No persistence]")
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

func (m Model) headerHelp() string {
	switch m.view {
	case ViewExecutions:
		return "/:Search  f:Filter  Enter:Expand  x:Collapse  Tab:Next  q:Quit "
	case ViewClassify:
		return "Enter:Prompt  Tab:Next  q:Quit "
	case ViewPlugins:
		return "e:Enable/Disable  Enter:Commands  Tab:Next  q:Quit "
	case ViewGitLab:
		return "Enter:Expand  c:Comment  Tab:Next  q:Quit "
	case ViewFeedback:
		return "w:Window  Tab:Next  r:Refresh  q:Quit "
	case ViewModels:
		return "w:Period  Tab:Next  r:Refresh  q:Quit "
	default:
		return "Tab:Next  r:Refresh  q:Quit "
	}
}

// sourceBadge renders the data provenance line shown on every page.
func sourceBadge(src viewmodel.DataSource, state query.State, err error) string {
	var parts []string
	if src == viewmodel.SourceDemo {
		parts = append(parts, demoBadgeStyle.Render("[DEMO DATA]"))
	}
	switch state {
	case query.Loading:
		parts = append(parts, dimStyle.Render("fetching..."))
	case query.Failed:
		msg := "fetch failed"
		if err != nil {
			msg = "fetch failed: " + err.Error()
		}
		parts = append(parts, errStyle.Render(msg))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  ") + "\n"
}

func (m Model) renderStatusBar() string {
	if m.notice == "" {
		return ""
	}
	return "\n" + statusBarStyle.Render(m.notice)
}

func (m Model) overlayStatusMenu(base string) string {
	content := panelTitleStyle.Render("Status Filter") + "\n\n"
	for i, opt := range m.statusMenu.Options {
		cursor := "  "
		if i == m.statusMenu.Cursor {
			cursor = "> "
		}
		line := cursor + opt.Label
		if i == m.statusMenu.Cursor {
			line = selectedStyle.Render(line)
		}
		content += line + "\n"
	}
	content += "\nEnter: Select  Esc: Close"

	dialog := menuStyle.Render(content)

	return lipgloss.Place(
		lipgloss.Width(base),
		lipgloss.Height(base),
		lipgloss.Center,
		lipgloss.Center,
		dialog,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func clampHeight(output string, height int) string {
	if height <= 0 {
		return output
	}
	lines := strings.Split(output, "\n")
	if len(lines) > height {
		lines = lines[:height]
		output = strings.Join(lines, "\n")
	}
	return output
}

// scrollWindow slices lines to the visible region, keeping the scroll
// position within bounds.
func scrollWindow(lines []string, scrollPos, visibleH int) []string {
	if visibleH < 1 {
		visibleH = 1
	}
	startIdx := scrollPos
	if startIdx > len(lines)-visibleH {
		startIdx = len(lines) - visibleH
	}
	if startIdx < 0 {
		startIdx = 0
	}
	endIdx := startIdx + visibleH
	if endIdx > len(lines) {
		endIdx = len(lines)
	}
	return lines[startIdx:endIdx]
}

func renderProgressBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	if ratio >= 0.8 {
		return okStyle.Render(bar)
	}
	if ratio >= 0.5 {
		return warnStyle.Render(bar)
	}
	return errStyle.Render(bar)
}

func formatNumber(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%.2fM", float64(n)/1000000)
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return s[:maxLen]
	}
	return s[:maxLen-1] + "…"
}
