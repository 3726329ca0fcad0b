// Package prompt provides the yes/no question shown after each check step.
package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavecue/internal/ui"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// AnswerMsg is sent when the question is answered.
type AnswerMsg struct {
	Yes     bool
	Context any // User-provided context passed through
}

// Model is a yes/no question.
type Model struct {
	ui.Base
	title    string
	question string
	context  any
	active   bool
}

// New creates a new prompt model.
func New() Model {
	return Model{}
}

// Ask displays the question.
func (m *Model) Ask(title, question string, context any, width, height int) {
	m.title = title
	m.question = question
	m.context = context
	m.SetSize(width, height)
	m.active = true
}

// Reset clears the prompt state.
func (m *Model) Reset() {
	m.title = ""
	m.question = ""
	m.context = nil
	m.active = false
}

// Active returns whether a question is waiting for an answer.
func (m Model) Active() bool {
	return m.active
}

// Update handles key presses while a question is shown.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "enter", "y", "Y":
		return m.answer(true)
	case "esc", "n", "N":
		return m.answer(false)
	}
	return nil
}

func (m *Model) answer(yes bool) tea.Cmd {
	m.active = false
	ctx := m.context
	return func() tea.Msg {
		return AnswerMsg{Yes: yes, Context: ctx}
	}
}

// View renders the question.
func (m Model) View() string {
	if !m.active || m.Width() == 0 {
		return ""
	}

	width := m.Width()
	title := titleStyle.Width(width).Render(m.title)
	question := messageStyle.Width(width).Render(m.question)
	hint := hintStyle.Render("Enter/Y: yes, Esc/N: no")

	return title + "\n\n" + question + "\n\n" + hint
}
