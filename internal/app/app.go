// internal/app/app.go
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavecue/internal/scenario"
	"github.com/llehouerou/wavecue/internal/ui/prompt"
)

// maxLogLines bounds the captured device messages kept on screen.
const maxLogLines = 5

// Model walks the listener through a list of checks.
type Model struct {
	checks  []scenario.Scenario
	env     scenario.Env
	ctx     context.Context
	cancel  context.CancelFunc
	asks    chan askRequest
	current int

	Spinner spinner.Model
	Prompt  prompt.Model
	Results []Result
	Log     []string
	Done    bool
	Width   int
	Height  int
}

// New creates the checker model. Questions from checks are routed to the
// prompt; env.Ask is replaced.
func New(ctx context.Context, checks []scenario.Scenario, env scenario.Env) Model {
	ctx, cancel := context.WithCancel(ctx)
	asks := make(chan askRequest)
	env.Ask = bridge(asks)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

	m := Model{
		checks:  checks,
		env:     env,
		ctx:     ctx,
		cancel:  cancel,
		asks:    asks,
		Spinner: sp,
		Prompt:  prompt.New(),
	}
	m.skip()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		m.WatchQuestions(),
		WatchStderr(),
		WatchPlayerErrors(),
		m.run(),
	)
}

// Current returns the check being run, if any.
func (m Model) Current() (scenario.Scenario, bool) {
	if m.current >= len(m.checks) {
		return scenario.Scenario{}, false
	}
	return m.checks[m.current], true
}

// Failed reports whether any answer was no or any check errored.
func (m Model) Failed() bool {
	for _, r := range m.Results {
		if r.Failed() {
			return true
		}
	}
	return false
}

// Close stops the check in progress.
func (m Model) Close() {
	m.cancel()
}

// skip records the checks that need media, from m.current on, as skipped
// when no media folder is set.
func (m *Model) skip() {
	for m.current < len(m.checks) && m.checks[m.current].NeedsMedia && m.env.MediaDir == "" {
		m.Results = append(m.Results, Result{Scenario: m.checks[m.current].Name, Skipped: true})
		m.current++
	}
	m.Done = m.current >= len(m.checks)
}

// run starts the current check, or quits once every check has run.
func (m Model) run() tea.Cmd {
	if m.Done {
		return tea.Quit
	}
	return RunCheck(m.ctx, m.current, m.checks[m.current], m.env)
}
