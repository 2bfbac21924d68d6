// Package platform defines the record types exchanged with the agent
// routing platform's API. These mirror the API payloads and are immutable
// once fetched: the dashboard only filters, aggregates and displays them.
package platform

import "time"

// Reaction tokens the platform emits for feedback records. Anything
// outside these sets counts toward totals but not toward either side.
const (
	ReactionThumbsUp   = "thumbsup"
	ReactionPlusOne    = "+1"
	ReactionThumbsDown = "thumbsdown"
	ReactionMinusOne   = "-1"
)

// Method identifies how the platform routed a prompt to an agent.
type Method string

const (
	MethodKeyword         Method = "keyword"
	MethodSemantic        Method = "semantic"
	MethodLLMFallback     Method = "llm_fallback"
	MethodDefaultFallback Method = "default_fallback"
)

// Methods lists all routing methods in display order.
func Methods() []Method {
	return []Method{MethodKeyword, MethodSemantic, MethodLLMFallback, MethodDefaultFallback}
}

// ExecutionStatus is the terminal (or in-flight) state of an execution.
type ExecutionStatus string

const (
	StatusSuccess ExecutionStatus = "success"
	StatusError   ExecutionStatus = "error"
	StatusRunning ExecutionStatus = "running"
)

// FeedbackRecord is a single user reaction to an agent response.
type FeedbackRecord struct {
	Reaction string `json:"reaction"`
	UserID   string `json:"user_id"`
	Source   string `json:"source"`
	Comment  string `json:"comment,omitempty"`
}

// TokenUsageRecord is the token and cost accounting for one request.
type TokenUsageRecord struct {
	InputTokens  int64   `json:"input_tokens"`
	OutputTokens int64   `json:"output_tokens"`
	CostUSD      float64 `json:"cost_usd"`
}

// RoutingDecision records which method routed a prompt and how long the
// decision took.
type RoutingDecision struct {
	Method     Method  `json:"method"`
	DurationMS float64 `json:"duration_ms"`
}

// Alternative is a runner-up candidate from a classification.
type Alternative struct {
	AgentID    string  `json:"agent_id"`
	AgentName  string  `json:"agent_name"`
	Confidence float64 `json:"confidence"`
}

// ClassificationResult is the outcome of classifying a single prompt.
// Alternatives are ordered by descending confidence as returned by the
// platform.
type ClassificationResult struct {
	AgentID      string        `json:"agent_id"`
	AgentName    string        `json:"agent_name"`
	Confidence   float64       `json:"confidence"`
	Method       Method        `json:"method"`
	DurationMS   float64       `json:"duration_ms"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
}

// ExecutionRecord is one agent execution as reported by the platform.
type ExecutionRecord struct {
	ID           string          `json:"id"`
	Prompt       string          `json:"prompt"`
	Status       ExecutionStatus `json:"status"`
	AgentID      string          `json:"agent_id"`
	ProjectID    string          `json:"project_id,omitempty"`
	Model        string          `json:"model,omitempty"`
	UserID       string          `json:"user_id,omitempty"`
	Channel      string          `json:"channel,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	DurationMS   float64         `json:"duration_ms"`
	InputTokens  int64           `json:"input_tokens,omitempty"`
	OutputTokens int64           `json:"output_tokens,omitempty"`
	CostUSD      float64         `json:"cost_usd,omitempty"`
	Result       string          `json:"result,omitempty"`
	Error        string          `json:"error,omitempty"`
	ThreadTS     string          `json:"thread_ts,omitempty"`
}

// ReviewFeedback is a feedback record attached to a GitLab review note.
type ReviewFeedback struct {
	ID string `json:"id"`
	FeedbackRecord
}

// GitLabReviewRecord is one automated merge-request review with its
// collected feedback.
type GitLabReviewRecord struct {
	ID            string           `json:"id"`
	ProjectID     string           `json:"project_id"`
	MRIID         int              `json:"mr_iid"`
	NoteID        int64            `json:"note_id"`
	MRContext     string           `json:"mr_context,omitempty"`
	ReviewContent string           `json:"review_content"`
	Feedback      []ReviewFeedback `json:"feedback,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// PluginCommand is one command exposed by a plugin.
type PluginCommand struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage,omitempty"`
}

// Plugin describes one installed platform plugin.
type Plugin struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Enabled     bool            `json:"enabled"`
	Commands    []PluginCommand `json:"commands,omitempty"`
}
