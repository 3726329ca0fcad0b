// internal/app/update.go
package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavecue/internal/errmsg"
	"github.com/llehouerou/wavecue/internal/ui/prompt"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Prompt.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case QuestionMsg:
		title := msg.req.Question.Scenario
		if s, ok := m.Current(); ok {
			title = s.Title
		}
		m.Prompt.Ask(title, msg.req.Question.Text, msg.req, m.Width, m.Height)
		return m, nil

	case prompt.AnswerMsg:
		req, ok := msg.Context.(askRequest)
		if !ok {
			return m, nil
		}
		m.Results = append(m.Results, Result{
			Scenario: req.Question.Scenario,
			Step:     req.Question.Step,
			Question: req.Question.Text,
			Answer:   msg.Yes,
		})
		req.reply <- msg.Yes
		return m, m.WatchQuestions()

	case CheckDoneMsg:
		if msg.Index != m.current {
			return m, nil
		}
		if msg.Err != nil {
			m.Results = append(m.Results, Result{Scenario: m.checks[m.current].Name, Err: msg.Err})
		}
		m.current++
		m.skip()
		return m, m.run()

	case StderrMsg:
		m.appendLog(msg.Line)
		return m, WatchStderr()

	case PlayerErrorMsg:
		m.appendLog(errmsg.Format(errmsg.OpPlaybackAudio, msg.Err))
		return m, WatchPlayerErrors()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit
	case "q":
		if !m.Prompt.Active() {
			m.cancel()
			return m, tea.Quit
		}
	}
	return m, m.Prompt.Update(msg)
}

func (m *Model) appendLog(line string) {
	m.Log = append(m.Log, line)
	if len(m.Log) > maxLogLines {
		m.Log = m.Log[len(m.Log)-maxLogLines:]
	}
}
