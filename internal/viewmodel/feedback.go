package viewmodel

import (
	"context"
	"sync"

	"github.com/routelab/agenttop/internal/demo"
	"github.com/routelab/agenttop/internal/metrics"
	"github.com/routelab/agenttop/internal/platform"
	"github.com/routelab/agenttop/internal/query"
)

// FeedbackViewModel drives the feedback/satisfaction page.
type FeedbackViewModel struct {
	notifier

	mu         sync.Mutex
	client     Client
	windowDays int
	scoreFn    metrics.ScoreFunc
	q          query.Query[[]platform.FeedbackRecord]
}

// FeedbackView is the render-ready snapshot of the feedback page.
type FeedbackView struct {
	Stats  metrics.FeedbackStats
	Window int
	Source DataSource
	State  query.State
	Err    error
}

func NewFeedbackViewModel(client Client, windowDays int, scoreFn metrics.ScoreFunc) *FeedbackViewModel {
	return &FeedbackViewModel{
		client:     client,
		windowDays: windowDays,
		scoreFn:    scoreFn,
	}
}

// Refetch fetches the feedback window. Call from a goroutine; the
// snapshot keeps showing the previous data until the fetch resolves.
func (vm *FeedbackViewModel) Refetch(ctx context.Context) {
	vm.mu.Lock()
	gen := vm.q.Begin()
	window := vm.windowDays
	vm.mu.Unlock()
	vm.notify()

	records, err := vm.client.Feedback(ctx, window)

	vm.mu.Lock()
	var applied bool
	if err != nil {
		applied = vm.q.Fail(gen, err)
	} else {
		applied = vm.q.Succeed(gen, records)
	}
	vm.mu.Unlock()
	if applied {
		vm.notify()
	}
}

// SetWindow changes the aggregation window for subsequent refetches.
func (vm *FeedbackViewModel) SetWindow(days int) {
	if days < 1 {
		return
	}
	vm.mu.Lock()
	vm.windowDays = days
	vm.mu.Unlock()
	vm.notify()
}

// Snapshot aggregates the current records into render-ready stats.
func (vm *FeedbackViewModel) Snapshot() FeedbackView {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	records, loaded := vm.q.Data()
	src := SourceLive
	if !loaded {
		records = demo.Feedback()
		src = SourceDemo
	}
	return FeedbackView{
		Stats:  metrics.Feedback(records, vm.scoreFn),
		Window: vm.windowDays,
		Source: src,
		State:  vm.q.State(),
		Err:    vm.q.Err(),
	}
}
