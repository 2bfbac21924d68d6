package selection

import (
	"fmt"
	"testing"
)

func TestToggle_SelfInverse(t *testing.T) {
	e := New()

	before := e.IsExpanded("row-1")
	e.Toggle("row-1")
	e.Toggle("row-1")

	if e.IsExpanded("row-1") != before {
		t.Error("double toggle must restore the original state")
	}

	e.Toggle("row-2")
	wasExpanded := e.IsExpanded("row-2")
	e.Toggle("row-2")
	e.Toggle("row-2")
	if e.IsExpanded("row-2") != wasExpanded {
		t.Error("double toggle must restore the original state for expanded items")
	}
}

func TestToggle_IndependentIDs(t *testing.T) {
	e := New()

	e.Toggle("a")
	e.Toggle("b")

	if !e.IsExpanded("a") || !e.IsExpanded("b") {
		t.Error("expected both a and b expanded")
	}

	e.Toggle("a")
	if e.IsExpanded("a") {
		t.Error("expected a collapsed")
	}
	if !e.IsExpanded("b") {
		t.Error("toggling a must not affect b")
	}
}

func TestCollapseAll(t *testing.T) {
	e := New()
	for i := 0; i < 10; i++ {
		e.Toggle(fmt.Sprintf("row-%d", i))
	}
	if e.Count() != 10 {
		t.Fatalf("expected count=10, got %d", e.Count())
	}

	e.CollapseAll()

	if e.Count() != 0 {
		t.Errorf("expected count=0 after CollapseAll, got %d", e.Count())
	}
	if e.IsExpanded("row-3") {
		t.Error("expected row-3 collapsed after CollapseAll")
	}
}

func TestLargeSet(t *testing.T) {
	e := New()
	const n = 100000
	for i := 0; i < n; i++ {
		e.Toggle(fmt.Sprintf("row-%d", i))
	}
	if e.Count() != n {
		t.Fatalf("expected count=%d, got %d", n, e.Count())
	}
	if !e.IsExpanded("row-99999") {
		t.Error("expected last row expanded")
	}
}
