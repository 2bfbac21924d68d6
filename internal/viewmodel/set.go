package viewmodel

import (
	"github.com/routelab/agenttop/internal/metrics"
	"github.com/routelab/agenttop/internal/storage"
)

// Options configures a full view model set.
type Options struct {
	WindowDays      int
	ExecutionsLimit int
	ModelPeriod     string
	HistoryCapacity int
	ProjectID       string            // optional GitLab project scope
	Score           metrics.ScoreFunc // nil = metrics.DefaultScore
	Store           *storage.Store    // nil = memory-only
}

// Set bundles one view model per dashboard page.
type Set struct {
	Feedback   *FeedbackViewModel
	Usage      *UsageViewModel
	Routing    *RoutingViewModel
	Projects   *ProjectsViewModel
	Models     *ModelsViewModel
	Executions *ExecutionsViewModel
	Classify   *ClassifyViewModel
	Plugins    *PluginsViewModel
	GitLab     *GitLabViewModel
}

// NewSet builds the view models for every page against one client.
func NewSet(client Client, opts Options) *Set {
	return &Set{
		Feedback:   NewFeedbackViewModel(client, opts.WindowDays, opts.Score),
		Usage:      NewUsageViewModel(client, opts.WindowDays, opts.Store),
		Routing:    NewRoutingViewModel(client),
		Projects:   NewProjectsViewModel(client),
		Models:     NewModelsViewModel(client, opts.ModelPeriod),
		Executions: NewExecutionsViewModel(client, opts.ExecutionsLimit),
		Classify:   NewClassifyViewModel(client, opts.HistoryCapacity, opts.Store),
		Plugins:    NewPluginsViewModel(client),
		GitLab:     NewGitLabViewModel(client, opts.ProjectID),
	}
}

// OnChange registers fn on every page's view model.
func (s *Set) OnChange(fn func()) {
	s.Feedback.OnChange(fn)
	s.Usage.OnChange(fn)
	s.Routing.OnChange(fn)
	s.Projects.OnChange(fn)
	s.Models.OnChange(fn)
	s.Executions.OnChange(fn)
	s.Classify.OnChange(fn)
	s.Plugins.OnChange(fn)
	s.GitLab.OnChange(fn)
}
