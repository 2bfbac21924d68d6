package tui

import (
	"fmt"
	"strings"
)

func (m Model) renderGitLab() string {
	view := m.vms.GitLab.Snapshot()

	var lines []string
	if badge := sourceBadge(view.Source, view.State, view.Err); badge != "" {
		lines = append(lines, strings.TrimRight(badge, "\n"))
	}

	s := view.Stats
	lines = append(lines,
		panelTitleStyle.Render("Review Feedback"),
		fmt.Sprintf("  Reactions: %d  (+%d / -%d)  Satisfaction: %.1f",
			s.Total, s.PositiveCount, s.NegativeCount, s.SatisfactionScore),
		"",
	)

	if m.commentFocused {
		lines = append(lines, "  Comment: "+m.commentInput.View(), "")
	}

	lines = append(lines, panelTitleStyle.Render(fmt.Sprintf("Reviews (%d)", len(view.Rows))))
	if len(view.Rows) == 0 {
		lines = append(lines, dimStyle.Render("  No reviews"))
	}

	for i, row := range view.Rows {
		r := row.Review

		marker := "▸"
		if row.Expanded {
			marker = "▾"
		}

		line := fmt.Sprintf("  %s MR !%d %-20s %s  %d feedback",
			marker, r.MRIID, truncateStr(r.ProjectID, 20),
			r.CreatedAt.Format("2006-01-02"), len(r.Feedback))
		if i == m.reviewCursor {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)

		if row.Expanded {
			if r.MRContext != "" {
				lines = append(lines, dimStyle.Render("      "+truncateStr(r.MRContext, 80)))
			}
			for _, bodyLine := range strings.Split(r.ReviewContent, "\n") {
				lines = append(lines, "      "+bodyLine)
			}
			for _, fb := range r.Feedback {
				note := "      " + fb.Reaction + " from " + fb.UserID
				if fb.Comment != "" {
					note += ": " + truncateStr(fb.Comment, 60)
				}
				lines = append(lines, dimStyle.Render(note))
			}
		}
	}

	visibleH := m.height - 3
	visible := scrollWindow(lines, 0, visibleH)
	return strings.Join(visible, "\n") + "\n"
}
