// Package metrics turns raw platform records into display-ready summary
// statistics. All functions are pure computations with no side effects:
// they never mutate their input, tolerate empty input, and treat malformed
// values (negative tokens or durations) as zero rather than failing, since
// partial telemetry is expected in production. Every rate is clamped to
// [0,1] and is 0 when its denominator is 0.
package metrics

import (
	"sort"

	"github.com/routelab/agenttop/internal/platform"
)

// Feedback counts reactions and derives rates. Positive reactions are
// "thumbsup" and "+1", negative are "thumbsdown" and "-1"; everything else
// counts only toward Total. The satisfaction score comes from scoreFn;
// DefaultScore is used when scoreFn is nil.
func Feedback(records []platform.FeedbackRecord, scoreFn ScoreFunc) FeedbackStats {
	if scoreFn == nil {
		scoreFn = DefaultScore
	}

	var stats FeedbackStats
	stats.Total = len(records)
	for _, r := range records {
		switch r.Reaction {
		case platform.ReactionThumbsUp, platform.ReactionPlusOne:
			stats.PositiveCount++
		case platform.ReactionThumbsDown, platform.ReactionMinusOne:
			stats.NegativeCount++
		}
	}

	if stats.Total > 0 {
		stats.PositiveRate = float64(stats.PositiveCount) / float64(stats.Total)
		stats.NegativeRate = float64(stats.NegativeCount) / float64(stats.Total)
	}
	stats.SatisfactionScore = scoreFn(stats.PositiveRate, stats.NegativeRate)
	return stats
}

// TokenUsage sums token counts and cost across records. The per-request
// average divides by the record count, guarded against zero.
func TokenUsage(records []platform.TokenUsageRecord) TokenSummary {
	var sum TokenSummary
	for _, r := range records {
		sum.InputTokens += clampTokens(r.InputTokens)
		sum.OutputTokens += clampTokens(r.OutputTokens)
		if r.CostUSD > 0 {
			sum.EstimatedCostUSD += r.CostUSD
		}
	}
	sum.TotalTokens = sum.InputTokens + sum.OutputTokens
	if len(records) > 0 {
		sum.AvgTokensPerRequest = float64(sum.TotalTokens) / float64(len(records))
	}
	return sum
}

// Routing computes the share of decisions per method and the mean decision
// time. Every known method appears in the rate map, including those with
// zero observations. Negative durations count as zero.
func Routing(decisions []platform.RoutingDecision) RoutingEfficiency {
	eff := RoutingEfficiency{
		RateByMethod: make(map[platform.Method]float64, 4),
	}
	for _, m := range platform.Methods() {
		eff.RateByMethod[m] = 0
	}
	if len(decisions) == 0 {
		return eff
	}

	counts := make(map[platform.Method]int)
	var totalMS float64
	for _, d := range decisions {
		counts[d.Method]++
		if d.DurationMS > 0 {
			totalMS += d.DurationMS
		}
	}

	total := float64(len(decisions))
	for m, n := range counts {
		eff.RateByMethod[m] = float64(n) / total
	}
	eff.AvgRoutingTimeMS = totalMS / total
	return eff
}

// ByProject groups executions by project. AgentCount is the cardinality of
// the distinct agent IDs seen for that project, not a running count.
// Rows are ordered by total executions descending, then project ID, so the
// output is deterministic.
func ByProject(executions []platform.ExecutionRecord) []ProjectStats {
	type projectAgg struct {
		agents     map[string]struct{}
		executions int
		durationMS float64
	}
	projects := make(map[string]*projectAgg)

	for _, e := range executions {
		agg, ok := projects[e.ProjectID]
		if !ok {
			agg = &projectAgg{agents: make(map[string]struct{})}
			projects[e.ProjectID] = agg
		}
		agg.executions++
		if e.AgentID != "" {
			agg.agents[e.AgentID] = struct{}{}
		}
		if e.DurationMS > 0 {
			agg.durationMS += e.DurationMS
		}
	}

	result := make([]ProjectStats, 0, len(projects))
	for id, agg := range projects {
		row := ProjectStats{
			ProjectID:       id,
			AgentCount:      len(agg.agents),
			TotalExecutions: agg.executions,
		}
		if agg.executions > 0 {
			row.AvgDurationMS = agg.durationMS / float64(agg.executions)
		}
		result = append(result, row)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalExecutions != result[j].TotalExecutions {
			return result[i].TotalExecutions > result[j].TotalExecutions
		}
		return result[i].ProjectID < result[j].ProjectID
	})
	return result
}

// ByModel groups executions by model. SuccessRate is the fraction of that
// model's executions with status success. Rows are ordered by request
// count descending, then model name.
func ByModel(executions []platform.ExecutionRecord) []ModelStats {
	type modelAgg struct {
		requests   int
		successes  int
		durationMS float64
		tokens     int64
		cost       float64
	}
	models := make(map[string]*modelAgg)

	for _, e := range executions {
		agg, ok := models[e.Model]
		if !ok {
			agg = &modelAgg{}
			models[e.Model] = agg
		}
		agg.requests++
		if e.Status == platform.StatusSuccess {
			agg.successes++
		}
		if e.DurationMS > 0 {
			agg.durationMS += e.DurationMS
		}
		agg.tokens += clampTokens(e.InputTokens) + clampTokens(e.OutputTokens)
		if e.CostUSD > 0 {
			agg.cost += e.CostUSD
		}
	}

	result := make([]ModelStats, 0, len(models))
	for name, agg := range models {
		row := ModelStats{
			Model:       name,
			Requests:    agg.requests,
			TotalTokens: agg.tokens,
			CostUSD:     agg.cost,
		}
		if agg.requests > 0 {
			row.AvgDurationMS = agg.durationMS / float64(agg.requests)
			row.SuccessRate = float64(agg.successes) / float64(agg.requests)
		}
		result = append(result, row)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Requests != result[j].Requests {
			return result[i].Requests > result[j].Requests
		}
		return result[i].Model < result[j].Model
	})
	return result
}

// WeightedSuccessRate is the overall success rate across model rows,
// weighted by request count. Returns 0 when there are no requests.
func WeightedSuccessRate(rows []ModelStats) float64 {
	var weighted float64
	var requests int
	for _, r := range rows {
		weighted += r.SuccessRate * float64(r.Requests)
		requests += r.Requests
	}
	if requests == 0 {
		return 0
	}
	return weighted / float64(requests)
}

func clampTokens(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
