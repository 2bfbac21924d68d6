// Package demo provides fixed, clearly-synthetic placeholder datasets so
// the dashboard layout stays inspectable before the platform API is
// reachable. Demo data is only ever substituted for a collection that has
// never successfully loaded; it is never persisted and every record is
// tagged with the "demo" source so it cannot be mistaken for a live
// zero-record result.
package demo

import (
	"time"

	"github.com/routelab/agenttop/internal/platform"
)

// Source tags every demo record's Source/Channel field.
const Source = "demo"

// Feedback returns a synthetic feedback window.
func Feedback() []platform.FeedbackRecord {
	return []platform.FeedbackRecord{
		{Reaction: platform.ReactionThumbsUp, UserID: "demo-user-1", Source: Source},
		{Reaction: platform.ReactionThumbsUp, UserID: "demo-user-2", Source: Source},
		{Reaction: platform.ReactionPlusOne, UserID: "demo-user-3", Source: Source},
		{Reaction: platform.ReactionThumbsDown, UserID: "demo-user-4", Source: Source, Comment: "wrong agent"},
		{Reaction: "eyes", UserID: "demo-user-5", Source: Source},
	}
}

// TokenUsage returns a synthetic usage window.
func TokenUsage() []platform.TokenUsageRecord {
	return []platform.TokenUsageRecord{
		{InputTokens: 1200, OutputTokens: 450, CostUSD: 0.012},
		{InputTokens: 3400, OutputTokens: 800, CostUSD: 0.031},
		{InputTokens: 900, OutputTokens: 310, CostUSD: 0.008},
	}
}

// RoutingDecisions returns a synthetic routing sample.
func RoutingDecisions() []platform.RoutingDecision {
	decisions := make([]platform.RoutingDecision, 0, 20)
	add := func(m platform.Method, n int, ms float64) {
		for i := 0; i < n; i++ {
			decisions = append(decisions, platform.RoutingDecision{Method: m, DurationMS: ms})
		}
	}
	add(platform.MethodKeyword, 9, 4)
	add(platform.MethodSemantic, 7, 38)
	add(platform.MethodLLMFallback, 2, 420)
	add(platform.MethodDefaultFallback, 2, 1)
	return decisions
}

// Executions returns synthetic executions shared by the executions,
// project and model pages.
func Executions() []platform.ExecutionRecord {
	now := time.Now()
	return []platform.ExecutionRecord{
		{
			ID: "demo-exec-1", Prompt: "summarize yesterday's incidents",
			Status: platform.StatusSuccess, AgentID: "demo-agent-sre",
			ProjectID: "demo-project-ops", Model: "demo-model-fast",
			Channel: Source, CreatedAt: now.Add(-2 * time.Hour),
			DurationMS: 1800, InputTokens: 2100, OutputTokens: 640, CostUSD: 0.02,
		},
		{
			ID: "demo-exec-2", Prompt: "draft release notes for v2.3",
			Status: platform.StatusSuccess, AgentID: "demo-agent-docs",
			ProjectID: "demo-project-ops", Model: "demo-model-smart",
			Channel: Source, CreatedAt: now.Add(-90 * time.Minute),
			DurationMS: 5200, InputTokens: 4800, OutputTokens: 1900, CostUSD: 0.11,
		},
		{
			ID: "demo-exec-3", Prompt: "why is the build failing on main?",
			Status: platform.StatusError, AgentID: "demo-agent-ci",
			ProjectID: "demo-project-ci", Model: "demo-model-fast",
			Channel: Source, CreatedAt: now.Add(-40 * time.Minute),
			DurationMS: 700, Error: "agent timeout",
		},
		{
			ID: "demo-exec-4", Prompt: "rotate the staging credentials",
			Status: platform.StatusRunning, AgentID: "demo-agent-sre",
			ProjectID: "demo-project-ops", Model: "demo-model-fast",
			Channel: Source, CreatedAt: now.Add(-5 * time.Minute),
		},
	}
}

// Plugins returns a synthetic plugin inventory.
func Plugins() []platform.Plugin {
	return []platform.Plugin{
		{
			ID: "demo-plugin-jira", Name: "jira", Enabled: true,
			Description: "Create and link Jira issues from agent runs",
			Commands: []platform.PluginCommand{
				{Name: "jira-create", Description: "create an issue", Usage: "/jira-create <summary>"},
			},
		},
		{
			ID: "demo-plugin-pager", Name: "pager", Enabled: false,
			Description: "Page the on-call engineer",
		},
	}
}

// GitLabReviews returns a synthetic review list.
func GitLabReviews() []platform.GitLabReviewRecord {
	return []platform.GitLabReviewRecord{
		{
			ID: "demo-review-1", ProjectID: "demo-project-ops", MRIID: 42, NoteID: 1001,
			MRContext:     "feat: add retry budget to the scheduler",
			ReviewContent: "The retry loop ignores the jitter cap on line 80.",
			CreatedAt:     time.Now().Add(-3 * time.Hour),
			Feedback: []platform.ReviewFeedback{
				{ID: "demo-fb-1", FeedbackRecord: platform.FeedbackRecord{
					Reaction: platform.ReactionThumbsUp, UserID: "demo-user-1", Source: Source,
				}},
			},
		},
	}
}
