package tui

import "github.com/routelab/agenttop/internal/recfilter"

// StatusMenuState tracks the interactive status filter menu on the
// executions page.
type StatusMenuState struct {
	Active  bool
	Cursor  int
	Options []StatusOption
}

// StatusOption is one selectable status filter.
type StatusOption struct {
	Label string
	Value string
}

// NewStatusMenu creates the status menu with every execution status.
func NewStatusMenu() StatusMenuState {
	return StatusMenuState{
		Options: []StatusOption{
			{Label: "All", Value: recfilter.StatusAll},
			{Label: "Success", Value: "success"},
			{Label: "Error", Value: "error"},
			{Label: "Running", Value: "running"},
		},
	}
}
