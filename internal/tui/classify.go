package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderClassify() string {
	view := m.vms.Classify.Snapshot()

	var lines []string

	promptLine := "  Prompt: "
	switch {
	case view.Busy:
		promptLine += dimStyle.Render("classifying...")
	case m.promptFocused:
		promptLine += m.promptInput.View()
	default:
		promptLine += dimStyle.Render("(press Enter to type a prompt)")
	}
	lines = append(lines, panelTitleStyle.Render("Classification Tester"), promptLine, "")

	lines = append(lines, panelTitleStyle.Render(
		fmt.Sprintf("Recent Tests (%d)", len(view.History))))
	if len(view.History) == 0 {
		lines = append(lines, dimStyle.Render("  No classifications yet"))
	}

	for _, test := range view.History {
		res := test.Result
		lines = append(lines, fmt.Sprintf("  %s  %s",
			test.At.Format("15:04:05"), truncateStr(test.Prompt, 60)))
		lines = append(lines, fmt.Sprintf("    → %s (%s) %s %.0f%%  %.0fms",
			res.AgentName, res.Method, renderProgressBar(res.Confidence, 10),
			res.Confidence*100, res.DurationMS))
		for _, alt := range res.Alternatives {
			lines = append(lines, dimStyle.Render(fmt.Sprintf("      also: %s %.0f%%",
				alt.AgentName, alt.Confidence*100)))
		}
	}

	visibleH := m.height - 3
	visible := scrollWindow(lines, m.historyScroll, visibleH)
	return strings.Join(visible, "\n") + "\n"
}
