package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/routelab/agenttop/internal/platform"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "agenttop.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestClassificationRoundTrip(t *testing.T) {
	s := openTestStore(t)

	results := []platform.ClassificationResult{
		{AgentID: "ag-1", AgentName: "deployer", Confidence: 0.9, Method: platform.MethodKeyword, DurationMS: 12},
		{AgentID: "ag-2", AgentName: "ops", Confidence: 0.7, Method: platform.MethodSemantic, DurationMS: 40},
	}
	for i, r := range results {
		if err := s.SaveClassification("prompt", r); err != nil {
			t.Fatalf("saving classification %d: %v", i, err)
		}
	}

	entries, err := s.RecentClassifications(10)
	if err != nil {
		t.Fatalf("querying classifications: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	// Newest first.
	if entries[0].Result.AgentID != "ag-2" {
		t.Errorf("expected newest entry first, got %s", entries[0].Result.AgentID)
	}
	if entries[1].Result.Method != platform.MethodKeyword {
		t.Errorf("method round-trip failed: got %s", entries[1].Result.Method)
	}
	if entries[0].CreatedAt.IsZero() {
		t.Error("expected created_at to round-trip")
	}
}

func TestRecentClassifications_Limit(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := s.SaveClassification("p", platform.ClassificationResult{AgentID: "a", AgentName: "a"}); err != nil {
			t.Fatalf("saving: %v", err)
		}
	}

	entries, err := s.RecentClassifications(3)
	if err != nil {
		t.Fatalf("querying: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries with limit=3, got %d", len(entries))
	}
}

func TestDailyUsageUpsert(t *testing.T) {
	s := openTestStore(t)

	today := time.Now().Format("2006-01-02")
	if err := s.SaveDailyUsage(DailyUsage{Date: today, TotalTokens: 100, CostUSD: 0.5, Requests: 3}); err != nil {
		t.Fatalf("saving usage: %v", err)
	}
	// Second write for the same date replaces the row.
	if err := s.SaveDailyUsage(DailyUsage{Date: today, TotalTokens: 250, CostUSD: 1.2, Requests: 7}); err != nil {
		t.Fatalf("upserting usage: %v", err)
	}

	rows, err := s.QueryDailyUsage(7)
	if err != nil {
		t.Fatalf("querying usage: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row after upsert, got %d", len(rows))
	}
	if rows[0].TotalTokens != 250 || rows[0].Requests != 7 {
		t.Errorf("upsert did not replace values: %+v", rows[0])
	}
}

func TestQueryDailyUsage_Window(t *testing.T) {
	s := openTestStore(t)

	old := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	recent := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	for _, d := range []string{old, recent} {
		if err := s.SaveDailyUsage(DailyUsage{Date: d, TotalTokens: 1, Requests: 1}); err != nil {
			t.Fatalf("saving: %v", err)
		}
	}

	rows, err := s.QueryDailyUsage(7)
	if err != nil {
		t.Fatalf("querying: %v", err)
	}
	if len(rows) != 1 || rows[0].Date != recent {
		t.Errorf("expected only the recent row inside the window, got %+v", rows)
	}
}

func TestNewFromPath_EmptyPathDisablesPersistence(t *testing.T) {
	store, isPersistent := NewFromPath("")
	if store != nil || isPersistent {
		t.Error("empty path must disable persistence")
	}
}

func TestNewFromPath_ValidPath(t *testing.T) {
	store, isPersistent := NewFromPath(filepath.Join(t.TempDir(), "sub", "agenttop.db"))
	if store == nil || !isPersistent {
		t.Fatal("expected a persistent store for a writable path")
	}
	store.Close()
}
