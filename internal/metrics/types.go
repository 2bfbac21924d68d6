package metrics

import "github.com/routelab/agenttop/internal/platform"

// FeedbackStats summarizes a window of feedback reactions.
// PositiveCount+NegativeCount may be less than Total: reactions outside
// the recognized positive/negative token sets still count toward Total.
type FeedbackStats struct {
	Total             int
	PositiveCount     int
	NegativeCount     int
	PositiveRate      float64 // 0-1
	NegativeRate      float64 // 0-1
	SatisfactionScore float64 // 0-100
}

// TokenSummary summarizes token and cost usage over a window.
type TokenSummary struct {
	TotalTokens         int64
	InputTokens         int64
	OutputTokens        int64
	EstimatedCostUSD    float64
	AvgTokensPerRequest float64
}

// RoutingEfficiency reports the observed share of each routing method and
// the mean decision time. Rates come from independent sampling windows and
// are not required to sum to 1.
type RoutingEfficiency struct {
	RateByMethod     map[platform.Method]float64 // 0-1 each
	AvgRoutingTimeMS float64
}

// ProjectStats is one row of the per-project breakdown.
type ProjectStats struct {
	ProjectID       string
	AgentCount      int // distinct agent IDs, deduplicated
	TotalExecutions int
	AvgDurationMS   float64
}

// ModelStats is one row of the per-model breakdown.
type ModelStats struct {
	Model         string
	Requests      int
	AvgDurationMS float64
	TotalTokens   int64
	SuccessRate   float64 // 0-1
	CostUSD       float64
}

// ScoreFunc converts positive/negative rates into a satisfaction score on
// a 0-100 scale. The exact formula is computed upstream by the platform;
// callers inject whichever function matches it. Implementations should be
// monotonic in positiveRate and defined for the zero-total case.
type ScoreFunc func(positiveRate, negativeRate float64) float64

// DefaultScore is a neutral-at-50 scoring function: full credit for
// positive reactions, full penalty for negative ones, clamped to 0-100.
func DefaultScore(positiveRate, negativeRate float64) float64 {
	score := 50 + 50*positiveRate - 50*negativeRate
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
