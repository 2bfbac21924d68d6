// Package recfilter provides composable predicate filtering over record
// collections. Filtering is stable (original relative order is preserved),
// never mutates the source collection, and tolerates empty input, so it is
// safe to run on every state update regardless of fetch timing.
package recfilter

import "strings"

// StatusAll is the distinguished categorical value that matches every
// record.
const StatusAll = "all"

// Predicate reports whether a record passes the filter.
type Predicate[T any] func(T) bool

// Apply returns the records matching all predicates, in their original
// relative order. A nil predicate list returns a copy of the input.
func Apply[T any](records []T, preds ...Predicate[T]) []T {
	if len(records) == 0 {
		return nil
	}
	result := make([]T, 0, len(records))
	for _, r := range records {
		if matchesAll(r, preds) {
			result = append(result, r)
		}
	}
	return result
}

func matchesAll[T any](r T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(r) {
			return false
		}
	}
	return true
}

// Text builds a case-insensitive substring predicate against the field
// selected by fieldFn. An empty query (after trimming) matches everything.
func Text[T any](query string, fieldFn func(T) string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return func(T) bool { return true }
	}
	return func(r T) bool {
		return strings.Contains(strings.ToLower(fieldFn(r)), query)
	}
}

// Status builds an exact-match predicate against the categorical field
// selected by fieldFn. The value StatusAll (or empty) matches everything.
func Status[T any](want string, fieldFn func(T) string) Predicate[T] {
	if want == "" || want == StatusAll {
		return func(T) bool { return true }
	}
	return func(r T) bool {
		return fieldFn(r) == want
	}
}
