package api

import "fmt"

// NetworkError indicates a fetch that failed in transit or was rejected
// by the platform with a non-2xx status. Read paths surface it as a
// retryable error state; write paths surface it as a transient notice.
type NetworkError struct {
	Op         string
	StatusCode int // 0 when the request never completed
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: platform returned status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError indicates input rejected before (or by) dispatch, such
// as an empty classification prompt. It never reaches the network layer
// when raised client-side.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError indicates a referenced identifier is absent on the
// platform, such as a comment target that has been deleted.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}
