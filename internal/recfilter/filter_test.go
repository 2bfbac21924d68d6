package recfilter

import (
	"testing"

	"github.com/routelab/agenttop/internal/platform"
)

func status(r platform.ExecutionRecord) string { return string(r.Status) }
func prompt(r platform.ExecutionRecord) string { return r.Prompt }

func TestApply_StatusFilter(t *testing.T) {
	records := []platform.ExecutionRecord{
		{ID: "e1", Status: platform.StatusSuccess},
		{ID: "e2", Status: platform.StatusError, Prompt: "x"},
	}

	got := Apply(records,
		Status[platform.ExecutionRecord]("error", status),
		Text("", prompt),
	)

	if len(got) != 1 {
		t.Fatalf("expected exactly 1 record, got %d", len(got))
	}
	if got[0].ID != "e2" {
		t.Errorf("expected e2, got %s", got[0].ID)
	}
}

func TestApply_StatusAll(t *testing.T) {
	records := []platform.ExecutionRecord{
		{ID: "e1", Status: platform.StatusSuccess},
		{ID: "e2", Status: platform.StatusError},
	}

	got := Apply(records, Status[platform.ExecutionRecord](StatusAll, status))
	if len(got) != 2 {
		t.Errorf("expected all 2 records for status=all, got %d", len(got))
	}

	got = Apply(records, Status[platform.ExecutionRecord]("", status))
	if len(got) != 2 {
		t.Errorf("expected all 2 records for empty status, got %d", len(got))
	}
}

func TestApply_TextCaseInsensitive(t *testing.T) {
	records := []platform.ExecutionRecord{
		{ID: "e1", Prompt: "Deploy the staging cluster"},
		{ID: "e2", Prompt: "summarize this thread"},
	}

	got := Apply(records, Text("DEPLOY", prompt))

	if len(got) != 1 || got[0].ID != "e1" {
		t.Fatalf("expected only e1 to match, got %v", got)
	}
}

func TestApply_EmptyQueryMatchesAll(t *testing.T) {
	records := []platform.ExecutionRecord{
		{ID: "e1", Prompt: "a"},
		{ID: "e2", Prompt: "b"},
	}
	got := Apply(records, Text("   ", prompt))
	if len(got) != 2 {
		t.Errorf("blank query must match everything, got %d records", len(got))
	}
}

func TestApply_ComposedAND(t *testing.T) {
	records := []platform.ExecutionRecord{
		{ID: "e1", Status: platform.StatusError, Prompt: "deploy service"},
		{ID: "e2", Status: platform.StatusSuccess, Prompt: "deploy service"},
		{ID: "e3", Status: platform.StatusError, Prompt: "rollback"},
	}

	got := Apply(records,
		Status[platform.ExecutionRecord]("error", status),
		Text("deploy", prompt),
	)

	if len(got) != 1 || got[0].ID != "e1" {
		t.Fatalf("expected only e1 (error AND deploy), got %v", got)
	}
}

func TestApply_StableOrder(t *testing.T) {
	records := []platform.ExecutionRecord{
		{ID: "e1", Status: platform.StatusError},
		{ID: "e2", Status: platform.StatusSuccess},
		{ID: "e3", Status: platform.StatusError},
		{ID: "e4", Status: platform.StatusError},
	}

	got := Apply(records, Status[platform.ExecutionRecord]("error", status))

	want := []string{"e1", "e3", "e4"}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].ID != w {
			t.Errorf("position %d: expected %s, got %s", i, w, got[i].ID)
		}
	}
}

func TestApply_DoesNotMutateSource(t *testing.T) {
	records := []platform.ExecutionRecord{
		{ID: "e1", Status: platform.StatusError},
		{ID: "e2", Status: platform.StatusSuccess},
	}

	Apply(records, Status[platform.ExecutionRecord]("error", status))

	if records[0].ID != "e1" || records[1].ID != "e2" || len(records) != 2 {
		t.Error("source collection must not be mutated")
	}
}

func TestApply_EmptyInput(t *testing.T) {
	if got := Apply(nil, Status[platform.ExecutionRecord]("error", status)); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
