// Package query models the lifecycle of a single remote fetch: not yet
// asked, in flight, succeeded, or failed. Each fetch attempt is stamped
// with a generation so that a response arriving after a newer request has
// superseded it is discarded instead of overwriting fresher data.
package query

// State is the lifecycle phase of a Query.
type State int

const (
	NotAsked State = iota
	Loading
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case NotAsked:
		return "not_asked"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Query tracks one fetchable collection. The zero value is ready to use
// and reports NotAsked. Previously successful data is retained across
// Loading and Failed transitions so callers can keep displaying stale
// data instead of blanking, and a Failed state stays structurally
// distinct from an empty Success.
//
// Query is not safe for concurrent use on its own; owners guard it with
// their own lock.
type Query[T any] struct {
	state   State
	gen     uint64
	data    T
	hasData bool
	err     error
}

// Begin marks the query Loading and returns the generation for this
// attempt. Pass the generation to Succeed or Fail; attempts superseded by
// a later Begin are ignored there.
func (q *Query[T]) Begin() uint64 {
	q.gen++
	q.state = Loading
	return q.gen
}

// Succeed installs data for the given generation. It reports false and
// leaves the query untouched when gen is stale.
func (q *Query[T]) Succeed(gen uint64, data T) bool {
	if gen != q.gen {
		return false
	}
	q.state = Success
	q.data = data
	q.hasData = true
	q.err = nil
	return true
}

// Fail records err for the given generation. Previously loaded data is
// retained. It reports false when gen is stale.
func (q *Query[T]) Fail(gen uint64, err error) bool {
	if gen != q.gen {
		return false
	}
	q.state = Failed
	q.err = err
	return true
}

// State returns the current lifecycle phase.
func (q *Query[T]) State() State {
	return q.state
}

// Data returns the most recently loaded data and whether any fetch has
// ever succeeded. During Loading and Failed the last successful data is
// still returned.
func (q *Query[T]) Data() (T, bool) {
	return q.data, q.hasData
}

// Err returns the error from the most recent failed attempt, or nil.
func (q *Query[T]) Err() error {
	return q.err
}
