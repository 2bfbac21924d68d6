package viewmodel

import (
	"context"
	"sync"

	"github.com/routelab/agenttop/internal/demo"
	"github.com/routelab/agenttop/internal/metrics"
	"github.com/routelab/agenttop/internal/platform"
	"github.com/routelab/agenttop/internal/query"
)

// ModelsViewModel drives the per-model cost/statistics page.
type ModelsViewModel struct {
	notifier

	mu     sync.Mutex
	client Client
	period string
	q      query.Query[[]platform.ExecutionRecord]
}

// ModelsView is the render-ready snapshot of the models page.
type ModelsView struct {
	Rows        []metrics.ModelStats
	OverallRate float64 // request-weighted success rate across models
	Period      string
	Source      DataSource
	State       query.State
	Err         error
}

func NewModelsViewModel(client Client, period string) *ModelsViewModel {
	return &ModelsViewModel{client: client, period: period}
}

func (vm *ModelsViewModel) Refetch(ctx context.Context) {
	vm.mu.Lock()
	gen := vm.q.Begin()
	period := vm.period
	vm.mu.Unlock()
	vm.notify()

	executions, err := vm.client.ModelStats(ctx, period)

	vm.mu.Lock()
	var applied bool
	if err != nil {
		applied = vm.q.Fail(gen, err)
	} else {
		applied = vm.q.Succeed(gen, executions)
	}
	vm.mu.Unlock()
	if applied {
		vm.notify()
	}
}

// SetPeriod changes the stats period for subsequent refetches.
func (vm *ModelsViewModel) SetPeriod(period string) {
	if period == "" {
		return
	}
	vm.mu.Lock()
	vm.period = period
	vm.mu.Unlock()
	vm.notify()
}

func (vm *ModelsViewModel) Snapshot() ModelsView {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	executions, loaded := vm.q.Data()
	src := SourceLive
	if !loaded {
		executions = demo.Executions()
		src = SourceDemo
	}
	rows := metrics.ByModel(executions)
	return ModelsView{
		Rows:        rows,
		OverallRate: metrics.WeightedSuccessRate(rows),
		Period:      vm.period,
		Source:      src,
		State:       vm.q.State(),
		Err:         vm.q.Err(),
	}
}
