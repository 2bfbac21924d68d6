// Package selection tracks which items in a displayed list are expanded
// to show their detail view.
package selection

import "sync"

// Expanded is a set of item identifiers currently in the expanded state.
// Membership tests and mutations are O(1), so the set scales to the full
// displayed record list. All methods are safe for concurrent use.
type Expanded struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// New returns an empty selection.
func New() *Expanded {
	return &Expanded{ids: make(map[string]struct{})}
}

// Toggle flips the expanded state of id: expanded items collapse,
// collapsed items expand. Toggling twice restores the original state.
func (e *Expanded) Toggle(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.ids[id]; ok {
		delete(e.ids, id)
		return
	}
	e.ids[id] = struct{}{}
}

// IsExpanded reports whether id is currently expanded.
func (e *Expanded) IsExpanded(id string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.ids[id]
	return ok
}

// CollapseAll clears the set.
func (e *Expanded) CollapseAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ids = make(map[string]struct{})
}

// Count returns the number of expanded items.
func (e *Expanded) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.ids)
}
