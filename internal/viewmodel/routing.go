package viewmodel

import (
	"context"
	"sync"

	"github.com/routelab/agenttop/internal/demo"
	"github.com/routelab/agenttop/internal/metrics"
	"github.com/routelab/agenttop/internal/platform"
	"github.com/routelab/agenttop/internal/query"
)

// RoutingViewModel drives the routing-efficiency page.
type RoutingViewModel struct {
	notifier

	mu     sync.Mutex
	client Client
	q      query.Query[[]platform.RoutingDecision]
}

// RoutingView is the render-ready snapshot of the routing page.
type RoutingView struct {
	Efficiency metrics.RoutingEfficiency
	Decisions  int
	Source     DataSource
	State      query.State
	Err        error
}

func NewRoutingViewModel(client Client) *RoutingViewModel {
	return &RoutingViewModel{client: client}
}

func (vm *RoutingViewModel) Refetch(ctx context.Context) {
	vm.mu.Lock()
	gen := vm.q.Begin()
	vm.mu.Unlock()
	vm.notify()

	decisions, err := vm.client.RoutingEfficiency(ctx)

	vm.mu.Lock()
	var applied bool
	if err != nil {
		applied = vm.q.Fail(gen, err)
	} else {
		applied = vm.q.Succeed(gen, decisions)
	}
	vm.mu.Unlock()
	if applied {
		vm.notify()
	}
}

func (vm *RoutingViewModel) Snapshot() RoutingView {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	decisions, loaded := vm.q.Data()
	src := SourceLive
	if !loaded {
		decisions = demo.RoutingDecisions()
		src = SourceDemo
	}
	return RoutingView{
		Efficiency: metrics.Routing(decisions),
		Decisions:  len(decisions),
		Source:     src,
		State:      vm.q.State(),
		Err:        vm.q.Err(),
	}
}
