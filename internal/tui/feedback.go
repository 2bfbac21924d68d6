package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderFeedback() string {
	view := m.vms.Feedback.Snapshot()

	var sb strings.Builder
	sb.WriteString(sourceBadge(view.Source, view.State, view.Err))

	sb.WriteString(panelTitleStyle.Render(fmt.Sprintf("Feedback (last %d days)", view.Window)))
	sb.WriteByte('\n')

	s := view.Stats
	sb.WriteString(fmt.Sprintf("  Total reactions: %d\n", s.Total))
	sb.WriteString(fmt.Sprintf("  Positive:        %-5d %s %.0f%%\n",
		s.PositiveCount, renderProgressBar(s.PositiveRate, 20), s.PositiveRate*100))
	sb.WriteString(fmt.Sprintf("  Negative:        %-5d %s %.0f%%\n",
		s.NegativeCount, renderProgressBar(s.NegativeRate, 20), s.NegativeRate*100))
	sb.WriteByte('\n')

	sb.WriteString(panelTitleStyle.Render("Satisfaction"))
	sb.WriteByte('\n')
	sb.WriteString(fmt.Sprintf("  Score: %s %.1f / 100\n",
		renderProgressBar(s.SatisfactionScore/100, 30), s.SatisfactionScore))

	if s.Total == 0 {
		sb.WriteString(dimStyle.Render("\n  No feedback in this window"))
		sb.WriteByte('\n')
	}

	return sb.String()
}
