package history

import (
	"fmt"
	"sync"
	"testing"
)

func TestHistory_Eviction(t *testing.T) {
	h := New[string](3)

	for i := 1; i <= 5; i++ {
		h.Push(fmt.Sprintf("result-%d", i))
	}

	if h.Len() != 3 {
		t.Fatalf("expected len=3 after 5 pushes, got %d", h.Len())
	}

	items := h.Items()
	// Front = most recent (5th push), back = 3rd push.
	want := []string{"result-5", "result-4", "result-3"}
	for i, w := range want {
		if items[i] != w {
			t.Errorf("position %d: expected %q, got %q", i, w, items[i])
		}
	}
}

func TestHistory_OrderMostRecentFirst(t *testing.T) {
	h := New[int](10)

	h.Push(1)
	h.Push(2)
	h.Push(3)

	items := h.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0] != 3 || items[1] != 2 || items[2] != 1 {
		t.Errorf("expected [3 2 1], got %v", items)
	}
}

func TestHistory_NoDeduplication(t *testing.T) {
	h := New[string](5)

	h.Push("same")
	h.Push("same")
	h.Push("same")

	if h.Len() != 3 {
		t.Errorf("repeated identical entries must be kept, expected len=3, got %d", h.Len())
	}
}

func TestHistory_Empty(t *testing.T) {
	h := New[int](5)

	if items := h.Items(); items != nil {
		t.Errorf("expected nil for empty history, got %v", items)
	}
	if h.Len() != 0 {
		t.Errorf("expected len=0, got %d", h.Len())
	}
}

func TestHistory_CapacityClamped(t *testing.T) {
	h := New[int](0)
	if h.Cap() != 1 {
		t.Errorf("expected cap=1 for zero capacity input, got %d", h.Cap())
	}

	h.Push(1)
	h.Push(2)
	if h.Len() != 1 {
		t.Fatalf("expected len=1, got %d", h.Len())
	}
	if h.Items()[0] != 2 {
		t.Errorf("expected most recent entry 2, got %d", h.Items()[0])
	}
}

func TestHistory_ItemsIsACopy(t *testing.T) {
	h := New[int](3)
	h.Push(1)
	h.Push(2)

	items := h.Items()
	items[0] = 99

	if h.Items()[0] != 2 {
		t.Error("mutating the returned slice must not affect internal state")
	}
}

func TestHistory_ConcurrentPush(t *testing.T) {
	h := New[int](50)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			h.Push(n)
			h.Items()
		}(i)
	}
	wg.Wait()

	if h.Len() != 50 {
		t.Errorf("expected len=50, got %d", h.Len())
	}
}
