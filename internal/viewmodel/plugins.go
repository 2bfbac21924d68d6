package viewmodel

import (
	"context"
	"sync"

	"github.com/routelab/agenttop/internal/demo"
	"github.com/routelab/agenttop/internal/platform"
	"github.com/routelab/agenttop/internal/query"
	"github.com/routelab/agenttop/internal/selection"
)

// PluginsViewModel drives the plugin inventory page. Enabling or
// disabling a plugin is a write path: there is no optimistic commit, so
// a failed toggle leaves the displayed state untouched and the error is
// returned for the presentation layer to surface.
type PluginsViewModel struct {
	notifier

	mu       sync.Mutex
	client   Client
	q        query.Query[[]platform.Plugin]
	expanded *selection.Expanded
}

// PluginRow pairs a plugin with its command-list expansion state.
type PluginRow struct {
	Plugin   platform.Plugin
	Expanded bool
}

// PluginsView is the render-ready snapshot of the plugins page.
type PluginsView struct {
	Rows   []PluginRow
	Source DataSource
	State  query.State
	Err    error
}

func NewPluginsViewModel(client Client) *PluginsViewModel {
	return &PluginsViewModel{
		client:   client,
		expanded: selection.New(),
	}
}

func (vm *PluginsViewModel) Refetch(ctx context.Context) {
	vm.mu.Lock()
	gen := vm.q.Begin()
	vm.mu.Unlock()
	vm.notify()

	plugins, err := vm.client.Plugins(ctx)

	vm.mu.Lock()
	var applied bool
	if err != nil {
		applied = vm.q.Fail(gen, err)
	} else {
		applied = vm.q.Succeed(gen, plugins)
	}
	vm.mu.Unlock()
	if applied {
		vm.notify()
	}
}

// SetEnabled toggles a plugin on the platform, then refetches the
// inventory so the displayed state reflects what the platform accepted.
// On failure nothing changes locally.
func (vm *PluginsViewModel) SetEnabled(ctx context.Context, pluginID string, enabled bool) error {
	if err := vm.client.SetPluginEnabled(ctx, pluginID, enabled); err != nil {
		return err
	}
	vm.Refetch(ctx)
	return nil
}

// Toggle flips the command-list expansion of one plugin row.
func (vm *PluginsViewModel) Toggle(pluginID string) {
	vm.expanded.Toggle(pluginID)
	vm.notify()
}

func (vm *PluginsViewModel) Snapshot() PluginsView {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	plugins, loaded := vm.q.Data()
	src := SourceLive
	if !loaded {
		plugins = demo.Plugins()
		src = SourceDemo
	}

	rows := make([]PluginRow, 0, len(plugins))
	for _, p := range plugins {
		rows = append(rows, PluginRow{Plugin: p, Expanded: vm.expanded.IsExpanded(p.ID)})
	}
	return PluginsView{
		Rows:   rows,
		Source: src,
		State:  vm.q.State(),
		Err:    vm.q.Err(),
	}
}
