// Package viewmodel holds the per-page dashboard state: the last fetched
// collections, filter and expansion state, and the classification test
// history. View models expose snapshot-returning reads for the
// presentation layer and narrow mutation entry points for user actions.
//
// Fetch lifecycle rules shared by every page:
//   - while a request is in flight, previously displayed data is kept
//     (no empty-state flash on refetch);
//   - a response that resolves after a newer request has superseded it is
//     discarded (generation stamping in the query package);
//   - on failure the previous successful collection, if any, keeps being
//     displayed alongside a distinct error state;
//   - until the first successful fetch, snapshots expose the demo dataset
//     tagged SourceDemo so the layout is inspectable without a backend.
package viewmodel

import (
	"context"
	"sync"

	"github.com/routelab/agenttop/internal/metrics"
	"github.com/routelab/agenttop/internal/platform"
)

// Client is the slice of the platform API the view models consume.
// *api.Client satisfies it; tests substitute fakes.
type Client interface {
	Feedback(ctx context.Context, windowDays int) ([]platform.FeedbackRecord, error)
	TokenUsage(ctx context.Context, windowDays int) ([]platform.TokenUsageRecord, error)
	RoutingEfficiency(ctx context.Context) ([]platform.RoutingDecision, error)
	ProjectStats(ctx context.Context) ([]platform.ExecutionRecord, error)
	ModelStats(ctx context.Context, period string) ([]platform.ExecutionRecord, error)
	Executions(ctx context.Context, limit int) ([]platform.ExecutionRecord, error)
	Classify(ctx context.Context, prompt, projectID string) (platform.ClassificationResult, error)
	GitLabReviews(ctx context.Context, projectID string) ([]platform.GitLabReviewRecord, error)
	GitLabStats(ctx context.Context) (metrics.FeedbackStats, error)
	AddGitLabComment(ctx context.Context, reviewID, text string) error
	Plugins(ctx context.Context) ([]platform.Plugin, error)
	SetPluginEnabled(ctx context.Context, pluginID string, enabled bool) error
}

// DataSource distinguishes live platform data from the synthetic
// placeholder substituted before the first successful fetch.
type DataSource string

const (
	SourceLive DataSource = "live"
	SourceDemo DataSource = "demo"
)

// notifier implements the subscribe/notify half of the reactive read
// path. Listeners are invoked synchronously after every state
// transition, outside the owning view model's lock.
type notifier struct {
	mu        sync.Mutex
	listeners []func()
}

// OnChange registers fn to run after every state change.
func (n *notifier) OnChange(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

func (n *notifier) notify() {
	n.mu.Lock()
	listeners := n.listeners
	n.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}
