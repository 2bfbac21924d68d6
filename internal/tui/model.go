package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/routelab/agenttop/internal/config"
	"github.com/routelab/agenttop/internal/viewmodel"
)

type ViewState int

const (
	ViewFeedback ViewState = iota
	ViewUsage
	ViewRouting
	ViewProjects
	ViewModels
	ViewExecutions
	ViewClassify
	ViewPlugins
	ViewGitLab

	pageCount
)

func (v ViewState) label() string {
	switch v {
	case ViewFeedback:
		return "Feedback"
	case ViewUsage:
		return "Usage"
	case ViewRouting:
		return "Routing"
	case ViewProjects:
		return "Projects"
	case ViewModels:
		return "Models"
	case ViewExecutions:
		return "Executions"
	case ViewClassify:
		return "Classify"
	case ViewPlugins:
		return "Plugins"
	case ViewGitLab:
		return "GitLab"
	}
	return "?"
}

type tickMsg time.Time

// refreshMsg signals that a background fetch resolved and the snapshot
// may have changed.
type refreshMsg struct{}

type classifyResultMsg struct{ err error }
type commentResultMsg struct{ err error }
type pluginToggleMsg struct{ err error }

type Model struct {
	view     ViewState
	width    int
	height   int
	keys     KeyMap
	quitting bool

	cfg config.Config
	vms *viewmodel.Set

	// notice is a transient one-line message shown in the status bar,
	// cleared on the next key press.
	notice string

	searchInput  textinput.Model
	promptInput  textinput.Model
	commentInput textinput.Model

	searchFocused  bool
	promptFocused  bool
	commentFocused bool
	commentTarget  string

	statusMenu StatusMenuState

	execCursor      int
	pluginCursor    int
	reviewCursor    int
	usageScrollPos  int
	historyScroll   int
	projectsScroll  int
	modelsScroll    int

	windowChoices []int
	periodChoices []string

	isPersistent bool

	refreshRate time.Duration

	onShutdown func()
}

func NewModel(cfg config.Config, vms *viewmodel.Set, opts ...ModelOption) Model {
	search := textinput.New()
	search.Placeholder = "search prompts"
	search.CharLimit = 200

	prompt := textinput.New()
	prompt.Placeholder = "prompt to classify"
	prompt.CharLimit = 2000

	comment := textinput.New()
	comment.Placeholder = "comment"
	comment.CharLimit = 2000

	m := Model{
		view:          ViewFeedback,
		keys:          DefaultKeyMap(),
		cfg:           cfg,
		vms:           vms,
		searchInput:   search,
		promptInput:   prompt,
		commentInput:  comment,
		statusMenu:    NewStatusMenu(),
		windowChoices: []int{7, 14, 30},
		periodChoices: []string{"24h", "7d", "30d"},
		refreshRate:   time.Duration(cfg.Display.RefreshRateMS) * time.Millisecond,
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

type ModelOption func(*Model)

func WithStartView(v ViewState) ModelOption {
	return func(m *Model) { m.view = v }
}

func WithPersistenceFlag(isPersistent bool) ModelOption {
	return func(m *Model) { m.isPersistent = isPersistent }
}

func WithOnShutdown(fn func()) ModelOption {
	return func(m *Model) { m.onShutdown = fn }
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchCmd(m.view),
		m.tickCmd(),
	)
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchCmd refetches the view model behind one page. Refetch blocks until
// the request resolves, so it runs inside the command goroutine.
func (m Model) fetchCmd(v ViewState) tea.Cmd {
	vms := m.vms
	return func() tea.Msg {
		ctx := context.Background()
		switch v {
		case ViewFeedback:
			vms.Feedback.Refetch(ctx)
		case ViewUsage:
			vms.Usage.Refetch(ctx)
		case ViewRouting:
			vms.Routing.Refetch(ctx)
		case ViewProjects:
			vms.Projects.Refetch(ctx)
		case ViewModels:
			vms.Models.Refetch(ctx)
		case ViewExecutions:
			vms.Executions.Refetch(ctx)
		case ViewPlugins:
			vms.Plugins.Refetch(ctx)
		case ViewGitLab:
			vms.GitLab.Refetch(ctx)
		}
		return refreshMsg{}
	}
}

func (m Model) classifyCmd(prompt string) tea.Cmd {
	vms := m.vms
	return func() tea.Msg {
		return classifyResultMsg{err: vms.Classify.Classify(context.Background(), prompt, "")}
	}
}

func (m Model) commentCmd(reviewID, text string) tea.Cmd {
	vms := m.vms
	return func() tea.Msg {
		return commentResultMsg{err: vms.GitLab.AddComment(context.Background(), reviewID, text)}
	}
}

func (m Model) pluginToggleCmd(pluginID string, enabled bool) tea.Cmd {
	vms := m.vms
	return func() tea.Msg {
		return pluginToggleMsg{err: vms.Plugins.SetEnabled(context.Background(), pluginID, enabled)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = msg.Width / 2
		m.promptInput.Width = msg.Width - 10
		m.commentInput.Width = msg.Width - 10
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.fetchCmd(m.view), m.tickCmd())

	case refreshMsg:
		return m, nil

	case classifyResultMsg:
		if msg.err != nil {
			m.notice = "classify failed: " + msg.err.Error()
		}
		return m, nil

	case commentResultMsg:
		if msg.err != nil {
			m.notice = "comment failed: " + msg.err.Error()
		} else {
			m.notice = "comment posted"
		}
		return m, nil

	case pluginToggleMsg:
		if msg.err != nil {
			m.notice = "toggle failed: " + msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchFocused || m.promptFocused || m.commentFocused {
		return m.handleInputKey(msg)
	}

	if m.statusMenu.Active {
		return m.handleStatusMenuKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.onShutdown != nil {
			m.onShutdown()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		m.view = (m.view + 1) % pageCount
		return m, m.fetchCmd(m.view)

	case key.Matches(msg, m.keys.ShiftTab):
		m.view = (m.view + pageCount - 1) % pageCount
		return m, m.fetchCmd(m.view)

	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetchCmd(m.view)
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if r >= '1' && r <= '9' {
			target := ViewState(r - '1')
			if target < pageCount {
				m.view = target
				return m, m.fetchCmd(m.view)
			}
		}
	}

	switch m.view {
	case ViewFeedback:
		return m.handleFeedbackKey(msg)
	case ViewUsage:
		return m.handleUsageKey(msg)
	case ViewProjects:
		return m.handleProjectsKey(msg)
	case ViewModels:
		return m.handleModelsKey(msg)
	case ViewExecutions:
		return m.handleExecutionsKey(msg)
	case ViewClassify:
		return m.handleClassifyKey(msg)
	case ViewPlugins:
		return m.handlePluginsKey(msg)
	case ViewGitLab:
		return m.handleGitLabKey(msg)
	}

	return m, nil
}

// handleInputKey routes keystrokes to whichever text input owns focus.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.blurInputs()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		switch {
		case m.searchFocused:
			m.vms.Executions.SetSearch(m.searchInput.Value())
			m.blurInputs()
			return m, nil
		case m.promptFocused:
			prompt := m.promptInput.Value()
			m.promptInput.SetValue("")
			m.blurInputs()
			return m, m.classifyCmd(prompt)
		case m.commentFocused:
			text := m.commentInput.Value()
			target := m.commentTarget
			m.commentInput.SetValue("")
			m.blurInputs()
			return m, m.commentCmd(target, text)
		}
	}

	var cmd tea.Cmd
	switch {
	case m.searchFocused:
		m.searchInput, cmd = m.searchInput.Update(msg)
		// Live filtering as the query changes.
		m.vms.Executions.SetSearch(m.searchInput.Value())
	case m.promptFocused:
		m.promptInput, cmd = m.promptInput.Update(msg)
	case m.commentFocused:
		m.commentInput, cmd = m.commentInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) blurInputs() {
	m.searchFocused = false
	m.promptFocused = false
	m.commentFocused = false
	m.commentTarget = ""
	m.searchInput.Blur()
	m.promptInput.Blur()
	m.commentInput.Blur()
}

func (m Model) handleFeedbackKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.CycleRange) {
		current := m.vms.Feedback.Snapshot().Window
		m.vms.Feedback.SetWindow(nextChoice(m.windowChoices, current))
		return m, m.fetchCmd(ViewFeedback)
	}
	return m, nil
}

func (m Model) handleUsageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.usageScrollPos > 0 {
			m.usageScrollPos--
		}
	case key.Matches(msg, m.keys.Down):
		m.usageScrollPos++
	}
	return m, nil
}

func (m Model) handleProjectsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.projectsScroll > 0 {
			m.projectsScroll--
		}
	case key.Matches(msg, m.keys.Down):
		m.projectsScroll++
	}
	return m, nil
}

func (m Model) handleModelsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CycleRange):
		current := m.vms.Models.Snapshot().Period
		m.vms.Models.SetPeriod(nextStringChoice(m.periodChoices, current))
		return m, m.fetchCmd(ViewModels)
	case key.Matches(msg, m.keys.Up):
		if m.modelsScroll > 0 {
			m.modelsScroll--
		}
	case key.Matches(msg, m.keys.Down):
		m.modelsScroll++
	}
	return m, nil
}

func (m Model) handleExecutionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.vms.Executions.Snapshot().Rows

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.execCursor > 0 {
			m.execCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.execCursor < len(rows)-1 {
			m.execCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.execCursor >= 0 && m.execCursor < len(rows) {
			m.vms.Executions.Toggle(rows[m.execCursor].Record.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searchFocused = true
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.statusMenu.Active = true
		return m, nil

	case key.Matches(msg, m.keys.Collapse):
		m.vms.Executions.CollapseAll()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searchInput.SetValue("")
		m.vms.Executions.SetSearch("")
		m.execCursor = 0
		return m, nil
	}

	return m, nil
}

func (m Model) handleStatusMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.statusMenu.Active = false
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.statusMenu.Cursor > 0 {
			m.statusMenu.Cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.statusMenu.Cursor < len(m.statusMenu.Options)-1 {
			m.statusMenu.Cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.statusMenu.Cursor >= 0 && m.statusMenu.Cursor < len(m.statusMenu.Options) {
			m.vms.Executions.SetStatus(m.statusMenu.Options[m.statusMenu.Cursor].Value)
			m.statusMenu.Active = false
			m.execCursor = 0
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleClassifyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		if !m.vms.Classify.Snapshot().Busy {
			m.promptFocused = true
			m.promptInput.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.historyScroll > 0 {
			m.historyScroll--
		}
	case key.Matches(msg, m.keys.Down):
		m.historyScroll++
	}
	return m, nil
}

func (m Model) handlePluginsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.vms.Plugins.Snapshot().Rows

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.pluginCursor > 0 {
			m.pluginCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.pluginCursor < len(rows)-1 {
			m.pluginCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.pluginCursor >= 0 && m.pluginCursor < len(rows) {
			m.vms.Plugins.Toggle(rows[m.pluginCursor].Plugin.ID)
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] == 'e' {
		if m.pluginCursor >= 0 && m.pluginCursor < len(rows) {
			p := rows[m.pluginCursor].Plugin
			return m, m.pluginToggleCmd(p.ID, !p.Enabled)
		}
	}

	return m, nil
}

func (m Model) handleGitLabKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.vms.GitLab.Snapshot().Rows

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.reviewCursor > 0 {
			m.reviewCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.reviewCursor < len(rows)-1 {
			m.reviewCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.reviewCursor >= 0 && m.reviewCursor < len(rows) {
			m.vms.GitLab.Toggle(rows[m.reviewCursor].Review.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Comment):
		if m.reviewCursor >= 0 && m.reviewCursor < len(rows) {
			m.commentTarget = rows[m.reviewCursor].Review.ID
			m.commentFocused = true
			m.commentInput.Focus()
		}
		return m, nil
	}

	return m, nil
}

func nextChoice(choices []int, current int) int {
	for i, c := range choices {
		if c == current {
			return choices[(i+1)%len(choices)]
		}
	}
	return choices[0]
}

func nextStringChoice(choices []string, current string) string {
	for i, c := range choices {
		if c == current {
			return choices[(i+1)%len(choices)]
		}
	}
	return choices[0]
}

func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	header := m.renderHeader()

	var body string
	switch m.view {
	case ViewFeedback:
		body = m.renderFeedback()
	case ViewUsage:
		body = m.renderUsage()
	case ViewRouting:
		body = m.renderRouting()
	case ViewProjects:
		body = m.renderProjects()
	case ViewModels:
		body = m.renderModels()
	case ViewExecutions:
		body = m.renderExecutions()
	case ViewClassify:
		body = m.renderClassify()
	case ViewPlugins:
		body = m.renderPlugins()
	case ViewGitLab:
		body = m.renderGitLab()
	}

	output := header + "\n" + body + m.renderStatusBar()

	if m.statusMenu.Active {
		output = m.overlayStatusMenu(output)
	}

	return clampHeight(output, m.height)
}
