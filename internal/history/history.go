// Package history provides a fixed-capacity, most-recent-first buffer for
// retaining the last N interactive results.
package history

import "sync"

// History is a bounded most-recent-first buffer. Push inserts at the
// front; once the buffer is full the oldest entry is evicted from the
// back. Entries are never deduplicated: repeated identical results are
// kept as separate entries, reflecting repeated user actions.
// All methods are safe for concurrent use.
type History[T any] struct {
	mu    sync.RWMutex
	items []T
	cap   int
}

// New creates a History with the given capacity.
// Capacity must be at least 1; smaller values are clamped to 1.
func New[T any](capacity int) *History[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &History[T]{
		items: make([]T, 0, capacity),
		cap:   capacity,
	}
}

// Push inserts item at the front. If the buffer exceeds capacity the
// oldest entry is dropped from the back.
func (h *History[T]) Push(item T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.items) == h.cap {
		copy(h.items[1:], h.items)
		h.items[0] = item
		return
	}
	h.items = append(h.items, item)
	copy(h.items[1:], h.items)
	h.items[0] = item
}

// Items returns a copy of the current entries, front = most recent.
func (h *History[T]) Items() []T {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.items) == 0 {
		return nil
	}
	out := make([]T, len(h.items))
	copy(out, h.items)
	return out
}

// Len returns the number of entries currently held.
func (h *History[T]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.items)
}

// Cap returns the fixed capacity.
func (h *History[T]) Cap() int {
	return h.cap
}
