package viewmodel

import (
	"context"
	"sync"

	"github.com/routelab/agenttop/internal/demo"
	"github.com/routelab/agenttop/internal/metrics"
	"github.com/routelab/agenttop/internal/platform"
	"github.com/routelab/agenttop/internal/query"
	"github.com/routelab/agenttop/internal/selection"
)

// GitLabViewModel drives the GitLab review-feedback page: the review
// list (with expandable review bodies, which may be large) plus the
// platform-computed feedback summary.
type GitLabViewModel struct {
	notifier

	mu        sync.Mutex
	client    Client
	projectID string
	reviews   query.Query[[]platform.GitLabReviewRecord]
	stats     query.Query[metrics.FeedbackStats]
	expanded  *selection.Expanded
}

// ReviewRow pairs a review with its body expansion state.
type ReviewRow struct {
	Review   platform.GitLabReviewRecord
	Expanded bool
}

// GitLabView is the render-ready snapshot of the GitLab page.
type GitLabView struct {
	Rows       []ReviewRow
	Stats      metrics.FeedbackStats
	Source     DataSource
	State      query.State
	StatsState query.State
	Err        error
}

func NewGitLabViewModel(client Client, projectID string) *GitLabViewModel {
	return &GitLabViewModel{
		client:    client,
		projectID: projectID,
		expanded:  selection.New(),
	}
}

// Refetch fetches the review list and the feedback summary.
func (vm *GitLabViewModel) Refetch(ctx context.Context) {
	vm.mu.Lock()
	reviewGen := vm.reviews.Begin()
	statsGen := vm.stats.Begin()
	projectID := vm.projectID
	vm.mu.Unlock()
	vm.notify()

	reviews, reviewsErr := vm.client.GitLabReviews(ctx, projectID)
	stats, statsErr := vm.client.GitLabStats(ctx)

	vm.mu.Lock()
	var applied bool
	if reviewsErr != nil {
		applied = vm.reviews.Fail(reviewGen, reviewsErr)
	} else {
		applied = vm.reviews.Succeed(reviewGen, reviews)
	}
	if statsErr != nil {
		applied = vm.stats.Fail(statsGen, statsErr) || applied
	} else {
		applied = vm.stats.Succeed(statsGen, stats) || applied
	}
	vm.mu.Unlock()
	if applied {
		vm.notify()
	}
}

// AddComment posts a comment to a review. Write path: no local state
// changes on failure; on success the list is refetched.
func (vm *GitLabViewModel) AddComment(ctx context.Context, reviewID, text string) error {
	if err := vm.client.AddGitLabComment(ctx, reviewID, text); err != nil {
		return err
	}
	vm.Refetch(ctx)
	return nil
}

// Toggle flips the body expansion of one review row.
func (vm *GitLabViewModel) Toggle(reviewID string) {
	vm.expanded.Toggle(reviewID)
	vm.notify()
}

func (vm *GitLabViewModel) Snapshot() GitLabView {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	reviews, loaded := vm.reviews.Data()
	src := SourceLive
	if !loaded {
		reviews = demo.GitLabReviews()
		src = SourceDemo
	}

	rows := make([]ReviewRow, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, ReviewRow{Review: r, Expanded: vm.expanded.IsExpanded(r.ID)})
	}

	stats, statsLoaded := vm.stats.Data()
	if !statsLoaded {
		// Derive a placeholder summary from the demo reviews' feedback.
		var records []platform.FeedbackRecord
		for _, r := range reviews {
			for _, fb := range r.Feedback {
				records = append(records, fb.FeedbackRecord)
			}
		}
		stats = metrics.Feedback(records, nil)
	}

	return GitLabView{
		Rows:       rows,
		Stats:      stats,
		Source:     src,
		State:      vm.reviews.State(),
		StatsState: vm.stats.State(),
		Err:        vm.reviews.Err(),
	}
}
