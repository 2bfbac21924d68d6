package viewmodel

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/routelab/agenttop/internal/api"
	"github.com/routelab/agenttop/internal/history"
	"github.com/routelab/agenttop/internal/platform"
	"github.com/routelab/agenttop/internal/storage"
)

// ClassificationTest is one interactive classification with the prompt
// that produced it. Owned by the bounded history until evicted.
type ClassificationTest struct {
	Prompt string
	Result platform.ClassificationResult
	At     time.Time
}

// ClassifyViewModel drives the interactive "classify a prompt" tester.
// Results are kept in a bounded most-recent-first history and, when a
// persistent store is attached, appended to the on-disk history as well.
type ClassifyViewModel struct {
	notifier

	mu     sync.Mutex
	client Client
	store  *storage.Store
	hist   *history.History[ClassificationTest]
	busy   bool
}

// ClassifyView is the render-ready snapshot of the classify page.
type ClassifyView struct {
	History []ClassificationTest
	Busy    bool
}

func NewClassifyViewModel(client Client, capacity int, store *storage.Store) *ClassifyViewModel {
	return &ClassifyViewModel{
		client: client,
		store:  store,
		hist:   history.New[ClassificationTest](capacity),
	}
}

// LoadPersisted seeds the in-memory history from the store, newest
// entry at the front. No-op without a store.
func (vm *ClassifyViewModel) LoadPersisted() {
	if vm.store == nil {
		return
	}
	entries, err := vm.store.RecentClassifications(vm.hist.Cap())
	if err != nil {
		log.Printf("WARNING: failed to load classification history: %v", err)
		return
	}
	// Entries arrive newest first; push oldest first so the newest ends
	// up at the front of the bounded history.
	for i := len(entries) - 1; i >= 0; i-- {
		vm.hist.Push(ClassificationTest{
			Prompt: entries[i].Prompt,
			Result: entries[i].Result,
			At:     entries[i].CreatedAt,
		})
	}
	vm.notify()
}

// Classify submits prompt to the platform. A prompt that is empty after
// trimming returns a ValidationError without touching the network or the
// history. On failure the history is left unchanged; the error is
// returned for the presentation layer to surface as a transient notice.
func (vm *ClassifyViewModel) Classify(ctx context.Context, prompt, projectID string) error {
	if strings.TrimSpace(prompt) == "" {
		return &api.ValidationError{Field: "prompt", Reason: "must not be empty"}
	}

	vm.mu.Lock()
	if vm.busy {
		vm.mu.Unlock()
		return nil // one submission at a time; ignore double submits
	}
	vm.busy = true
	vm.mu.Unlock()
	vm.notify()

	result, err := vm.client.Classify(ctx, prompt, projectID)

	vm.mu.Lock()
	vm.busy = false
	vm.mu.Unlock()

	if err != nil {
		vm.notify()
		return err
	}

	vm.hist.Push(ClassificationTest{Prompt: prompt, Result: result, At: time.Now()})
	if vm.store != nil {
		if saveErr := vm.store.SaveClassification(prompt, result); saveErr != nil {
			log.Printf("WARNING: failed to persist classification: %v", saveErr)
		}
	}
	vm.notify()
	return nil
}

// Snapshot returns the history, most recent first.
func (vm *ClassifyViewModel) Snapshot() ClassifyView {
	vm.mu.Lock()
	busy := vm.busy
	vm.mu.Unlock()
	return ClassifyView{
		History: vm.hist.Items(),
		Busy:    busy,
	}
}
