package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/routelab/agenttop/internal/config"
	"github.com/routelab/agenttop/internal/metrics"
	"github.com/routelab/agenttop/internal/platform"
	"github.com/routelab/agenttop/internal/viewmodel"
)

// stubClient returns fixed data for every endpoint.
type stubClient struct {
	executions []platform.ExecutionRecord
	plugins    []platform.Plugin
}

func (c *stubClient) Feedback(ctx context.Context, windowDays int) ([]platform.FeedbackRecord, error) {
	return []platform.FeedbackRecord{{Reaction: platform.ReactionThumbsUp}}, nil
}

func (c *stubClient) TokenUsage(ctx context.Context, windowDays int) ([]platform.TokenUsageRecord, error) {
	return nil, nil
}

func (c *stubClient) RoutingEfficiency(ctx context.Context) ([]platform.RoutingDecision, error) {
	return nil, nil
}

func (c *stubClient) ProjectStats(ctx context.Context) ([]platform.ExecutionRecord, error) {
	return nil, nil
}

func (c *stubClient) ModelStats(ctx context.Context, period string) ([]platform.ExecutionRecord, error) {
	return nil, nil
}

func (c *stubClient) Executions(ctx context.Context, limit int) ([]platform.ExecutionRecord, error) {
	return c.executions, nil
}

func (c *stubClient) Classify(ctx context.Context, prompt, projectID string) (platform.ClassificationResult, error) {
	return platform.ClassificationResult{AgentID: "ag-1", AgentName: "sre"}, nil
}

func (c *stubClient) GitLabReviews(ctx context.Context, projectID string) ([]platform.GitLabReviewRecord, error) {
	return nil, nil
}

func (c *stubClient) GitLabStats(ctx context.Context) (metrics.FeedbackStats, error) {
	return metrics.FeedbackStats{}, nil
}

func (c *stubClient) AddGitLabComment(ctx context.Context, reviewID, text string) error {
	return nil
}

func (c *stubClient) Plugins(ctx context.Context) ([]platform.Plugin, error) {
	return c.plugins, nil
}

func (c *stubClient) SetPluginEnabled(ctx context.Context, pluginID string, enabled bool) error {
	return nil
}

func newTestModel(t *testing.T, client *stubClient) Model {
	t.Helper()
	vms := viewmodel.NewSet(client, viewmodel.Options{
		WindowDays:      7,
		ExecutionsLimit: 100,
		ModelPeriod:     "7d",
		HistoryCapacity: 10,
	})
	m := NewModel(config.DefaultConfig(), vms, WithPersistenceFlag(true))
	m.width = 120
	m.height = 40
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabCyclesThroughAllPages(t *testing.T) {
	m := newTestModel(t, &stubClient{})

	seen := map[ViewState]bool{m.view: true}
	var model tea.Model = m
	for range int(pageCount) {
		model, _ = model.(Model).Update(keyMsg("tab"))
		seen[model.(Model).view] = true
	}

	if len(seen) != int(pageCount) {
		t.Errorf("expected tab to visit all %d pages, visited %d", pageCount, len(seen))
	}
	if model.(Model).view != ViewFeedback {
		t.Errorf("expected to wrap back to the first page, got %v", model.(Model).view)
	}
}

func TestShiftTabWrapsBackward(t *testing.T) {
	m := newTestModel(t, &stubClient{})

	model, _ := m.Update(keyMsg("shift+tab"))
	if model.(Model).view != ViewGitLab {
		t.Errorf("expected shift+tab from first page to land on last, got %v", model.(Model).view)
	}
}

func TestDigitJumpsToPage(t *testing.T) {
	m := newTestModel(t, &stubClient{})

	model, _ := m.Update(keyMsg("6"))
	if model.(Model).view != ViewExecutions {
		t.Errorf("expected '6' to jump to executions, got %v", model.(Model).view)
	}
}

func TestQuitInvokesShutdownHook(t *testing.T) {
	shutdown := false
	client := &stubClient{}
	vms := viewmodel.NewSet(client, viewmodel.Options{
		WindowDays: 7, ExecutionsLimit: 100, ModelPeriod: "7d", HistoryCapacity: 10,
	})
	m := NewModel(config.DefaultConfig(), vms, WithOnShutdown(func() { shutdown = true }))

	model, cmd := m.Update(keyMsg("q"))
	if !shutdown {
		t.Error("expected quit to run the shutdown hook")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if !strings.Contains(model.(Model).View(), "Shutting down") {
		t.Error("expected the shutdown view")
	}
}

func TestExecutionsEnterTogglesRowUnderCursor(t *testing.T) {
	client := &stubClient{
		executions: []platform.ExecutionRecord{
			{ID: "e1", Prompt: "one", Status: platform.StatusSuccess},
			{ID: "e2", Prompt: "two", Status: platform.StatusError},
		},
	}
	m := newTestModel(t, client)
	m.vms.Executions.Refetch(context.Background())
	m.view = ViewExecutions

	var model tea.Model = m
	model, _ = model.(Model).Update(keyMsg("down"))
	model, _ = model.(Model).Update(keyMsg("enter"))

	rows := model.(Model).vms.Executions.Snapshot().Rows
	if !rows[1].Expanded {
		t.Error("expected the second row expanded")
	}
	if rows[0].Expanded {
		t.Error("expected the first row untouched")
	}
}

func TestStatusMenuSelectionAppliesFilter(t *testing.T) {
	client := &stubClient{
		executions: []platform.ExecutionRecord{
			{ID: "e1", Status: platform.StatusSuccess},
			{ID: "e2", Status: platform.StatusError},
		},
	}
	m := newTestModel(t, client)
	m.vms.Executions.Refetch(context.Background())
	m.view = ViewExecutions

	var model tea.Model = m
	model, _ = model.(Model).Update(keyMsg("f"))
	if !model.(Model).statusMenu.Active {
		t.Fatal("expected the status menu to open")
	}

	// Move to "Error" and select it.
	model, _ = model.(Model).Update(keyMsg("down"))
	model, _ = model.(Model).Update(keyMsg("down"))
	model, _ = model.(Model).Update(keyMsg("enter"))

	mm := model.(Model)
	if mm.statusMenu.Active {
		t.Error("expected the menu to close after selection")
	}
	rows := mm.vms.Executions.Snapshot().Rows
	if len(rows) != 1 || rows[0].Record.ID != "e2" {
		t.Errorf("expected only the error execution, got %+v", rows)
	}
}

func TestSearchInputFiltersLive(t *testing.T) {
	client := &stubClient{
		executions: []platform.ExecutionRecord{
			{ID: "e1", Prompt: "deploy staging", Status: platform.StatusSuccess},
			{ID: "e2", Prompt: "rollback", Status: platform.StatusSuccess},
		},
	}
	m := newTestModel(t, client)
	m.vms.Executions.Refetch(context.Background())
	m.view = ViewExecutions

	var model tea.Model = m
	model, _ = model.(Model).Update(keyMsg("/"))
	if !model.(Model).searchFocused {
		t.Fatal("expected the search input to take focus")
	}

	for _, r := range "roll" {
		model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	rows := model.(Model).vms.Executions.Snapshot().Rows
	if len(rows) != 1 || rows[0].Record.ID != "e2" {
		t.Errorf("expected live filtering to narrow to e2, got %+v", rows)
	}

	// Quit must not fire while typing.
	model, _ = model.(Model).Update(keyMsg("q"))
	if model.(Model).quitting {
		t.Error("expected typing 'q' in search not to quit")
	}
}

func TestViewRendersDemoBadgeBeforeFirstFetch(t *testing.T) {
	m := newTestModel(t, &stubClient{})
	m.view = ViewExecutions

	out := m.View()
	if !strings.Contains(out, "DEMO DATA") {
		t.Error("expected the demo badge before any successful fetch")
	}
}

func TestViewClampsToTerminalHeight(t *testing.T) {
	m := newTestModel(t, &stubClient{
		executions: make([]platform.ExecutionRecord, 200),
	})
	m.view = ViewExecutions
	m.height = 10

	out := m.View()
	if got := len(strings.Split(out, "\n")); got > 10 {
		t.Errorf("expected output clamped to 10 lines, got %d", got)
	}
}

func TestNoPersistenceIndicator(t *testing.T) {
	client := &stubClient{}
	vms := viewmodel.NewSet(client, viewmodel.Options{
		WindowDays: 7, ExecutionsLimit: 100, ModelPeriod: "7d", HistoryCapacity: 10,
	})
	m := NewModel(config.DefaultConfig(), vms, WithPersistenceFlag(false))
	m.width = 120
	m.height = 40

	if !strings.Contains(m.View(), "[No persistence]") {
		t.Error("expected the no-persistence indicator in the header")
	}
}
