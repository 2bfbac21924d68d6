package viewmodel

import (
	"context"
	"sync"

	"github.com/routelab/agenttop/internal/demo"
	"github.com/routelab/agenttop/internal/platform"
	"github.com/routelab/agenttop/internal/query"
	"github.com/routelab/agenttop/internal/recfilter"
	"github.com/routelab/agenttop/internal/selection"
)

// ExecutionsViewModel drives the execution-history page: a fetched
// record list narrowed by a text search and a status filter, with
// per-row expandable detail state.
type ExecutionsViewModel struct {
	notifier

	mu       sync.Mutex
	client   Client
	limit    int
	q        query.Query[[]platform.ExecutionRecord]
	search   string
	status   string
	expanded *selection.Expanded
}

// ExecutionRow pairs a record with its display expansion state.
type ExecutionRow struct {
	Record   platform.ExecutionRecord
	Expanded bool
}

// ExecutionsView is the render-ready snapshot of the executions page.
// Rows holds the filtered records in their original relative order;
// Total is the unfiltered count.
type ExecutionsView struct {
	Rows   []ExecutionRow
	Total  int
	Search string
	Status string
	Source DataSource
	State  query.State
	Err    error
}

func NewExecutionsViewModel(client Client, limit int) *ExecutionsViewModel {
	return &ExecutionsViewModel{
		client:   client,
		limit:    limit,
		status:   recfilter.StatusAll,
		expanded: selection.New(),
	}
}

func (vm *ExecutionsViewModel) Refetch(ctx context.Context) {
	vm.mu.Lock()
	gen := vm.q.Begin()
	limit := vm.limit
	vm.mu.Unlock()
	vm.notify()

	executions, err := vm.client.Executions(ctx, limit)

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

// SetSearch updates the text filter. Filtering is applied at snapshot
// time, so the change is visible on the next render.
func (vm *ExecutionsViewModel) SetSearch(q string) {
	vm.mu.Lock()
	vm.search = q
	vm.mu.Unlock()
	vm.notify()
}

// SetStatus updates the status filter; recfilter.StatusAll disables it.
func (vm *ExecutionsViewModel) SetStatus(status string) {
	vm.mu.Lock()
	vm.status = status
	vm.mu.Unlock()
	vm.notify()
}

// Toggle flips the expansion state of one row.
func (vm *ExecutionsViewModel) Toggle(id string) {
	vm.expanded.Toggle(id)
	vm.notify()
}

// CollapseAll collapses every expanded row.
func (vm *ExecutionsViewModel) CollapseAll() {
	vm.expanded.CollapseAll()
	vm.notify()
}

// Snapshot filters the current records and attaches expansion state.
func (vm *ExecutionsViewModel) Snapshot() ExecutionsView {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	executions, loaded := vm.q.Data()
	src := SourceLive
	if !loaded {
		executions = demo.Executions()
		src = SourceDemo
	}

	filtered := recfilter.Apply(executions,
		recfilter.Text(vm.search, func(r platform.ExecutionRecord) string { return r.Prompt }),
		recfilter.Status(vm.status, func(r platform.ExecutionRecord) string { return string(r.Status) }),
	)

	rows := make([]ExecutionRow, 0, len(filtered))
	for _, r := range filtered {
		rows = append(rows, ExecutionRow{Record: r, Expanded: vm.expanded.IsExpanded(r.ID)})
	}
	return ExecutionsView{
		Rows:   rows,
		Total:  len(executions),
		Search: vm.search,
		Status: vm.status,
		Source: src,
		State:  vm.q.State(),
		Err:    vm.q.Err(),
	}
}
