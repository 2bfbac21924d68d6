package viewmodel

import (
	"context"
	"sync"

	"github.com/routelab/agenttop/internal/demo"
	"github.com/routelab/agenttop/internal/metrics"
	"github.com/routelab/agenttop/internal/platform"
	"github.com/routelab/agenttop/internal/query"
)

// ProjectsViewModel drives the per-project breakdown page.
type ProjectsViewModel struct {
	notifier

	mu     sync.Mutex
	client Client
	q      query.Query[[]platform.ExecutionRecord]
}

// ProjectsView is the render-ready snapshot of the projects page.
type ProjectsView struct {
	Rows   []metrics.ProjectStats
	Source DataSource
	State  query.State
	Err    error
}

func NewProjectsViewModel(client Client) *ProjectsViewModel {
	return &ProjectsViewModel{client: client}
}

func (vm *ProjectsViewModel) Refetch(ctx context.Context) {
	vm.mu.Lock()
	gen := vm.q.Begin()
	vm.mu.Unlock()
	vm.notify()

	executions, err := vm.client.ProjectStats(ctx)

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

func (vm *ProjectsViewModel) Snapshot() ProjectsView {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	executions, loaded := vm.q.Data()
	src := SourceLive
	if !loaded {
		executions = demo.Executions()
		src = SourceDemo
	}
	return ProjectsView{
		Rows:   metrics.ByProject(executions),
		Source: src,
		State:  vm.q.State(),
		Err:    vm.q.Err(),
	}
}
