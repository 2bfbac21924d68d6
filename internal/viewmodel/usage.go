package viewmodel

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/routelab/agenttop/internal/demo"
	"github.com/routelab/agenttop/internal/metrics"
	"github.com/routelab/agenttop/internal/platform"
	"github.com/routelab/agenttop/internal/query"
	"github.com/routelab/agenttop/internal/storage"
)

// UsageViewModel drives the token/cost usage page. When a persistent
// store is attached, each successful fetch also upserts today's summary
// so the page can show a day-by-day history across restarts.
type UsageViewModel struct {
	notifier

	mu         sync.Mutex
	client     Client
	windowDays int
	store      *storage.Store
	q          query.Query[[]platform.TokenUsageRecord]
}

// UsageView is the render-ready snapshot of the usage page.
type UsageView struct {
	Summary metrics.TokenSummary
	Daily   []storage.DailyUsage
	Window  int
	Source  DataSource
	State   query.State
	Err     error
}

func NewUsageViewModel(client Client, windowDays int, store *storage.Store) *UsageViewModel {
	return &UsageViewModel{
		client:     client,
		windowDays: windowDays,
		store:      store,
	}
}

// Refetch fetches the usage window and records today's summary.
func (vm *UsageViewModel) Refetch(ctx context.Context) {
	vm.mu.Lock()
	gen := vm.q.Begin()
	window := vm.windowDays
	vm.mu.Unlock()
	vm.notify()

	records, err := vm.client.TokenUsage(ctx, window)

	vm.mu.Lock()
	var applied bool
	if err != nil {
		applied = vm.q.Fail(gen, err)
	} else {
		applied = vm.q.Succeed(gen, records)
	}
	store := vm.store
	vm.mu.Unlock()

	if err == nil && store != nil {
		sum := metrics.TokenUsage(records)
		saveErr := store.SaveDailyUsage(storage.DailyUsage{
			Date:        time.Now().Format("2006-01-02"),
			TotalTokens: sum.TotalTokens,
			CostUSD:     sum.EstimatedCostUSD,
			Requests:    len(records),
		})
		if saveErr != nil {
			log.Printf("WARNING: failed to persist daily usage: %v", saveErr)
		}
	}
	if applied {
		vm.notify()
	}
}

// Snapshot aggregates the current records into a render-ready summary.
func (vm *UsageViewModel) Snapshot() UsageView {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	records, loaded := vm.q.Data()
	src := SourceLive
	if !loaded {
		records = demo.TokenUsage()
		src = SourceDemo
	}

	view := UsageView{
		Summary: metrics.TokenUsage(records),
		Window:  vm.windowDays,
		Source:  src,
		State:   vm.q.State(),
		Err:     vm.q.Err(),
	}
	if vm.store != nil {
		daily, err := vm.store.QueryDailyUsage(vm.windowDays)
		if err != nil {
			log.Printf("WARNING: failed to read daily usage history: %v", err)
		} else {
			view.Daily = daily
		}
	}
	return view
}
