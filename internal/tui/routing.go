package tui

import (
	"fmt"
	"strings"

	"github.com/routelab/agenttop/internal/platform"
)

var methodLabels = map[platform.Method]string{
	platform.MethodKeyword:         "Keyword",
	platform.MethodSemantic:        "Semantic",
	platform.MethodLLMFallback:     "LLM Fallback",
	platform.MethodDefaultFallback: "Default Fallback",
}

func (m Model) renderRouting() string {
	view := m.vms.Routing.Snapshot()

	var sb strings.Builder
	sb.WriteString(sourceBadge(view.Source, view.State, view.Err))

	sb.WriteString(panelTitleStyle.Render("Routing Methods"))
	sb.WriteByte('\n')

	for _, method := range platform.Methods() {
		rate := view.Efficiency.RateByMethod[method]
		sb.WriteString(fmt.Sprintf("  %-17s %s %.0f%%\n",
			methodLabels[method], renderProgressBar(rate, 20), rate*100))
	}
	sb.WriteByte('\n')

	sb.WriteString(panelTitleStyle.Render("Decision Time"))
	sb.WriteByte('\n')
	sb.WriteString(fmt.Sprintf("  Avg: %.1fms over %d decisions\n",
		view.Efficiency.AvgRoutingTimeMS, view.Decisions))

	return sb.String()
}
