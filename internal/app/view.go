// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	logStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Done {
		return Summary(m.Results) + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("wavecue  check %d/%d", min(m.current+1, len(m.checks)), len(m.checks))))
	b.WriteString("\n\n")

	switch s, ok := m.Current(); {
	case m.Prompt.Active():
		b.WriteString(m.Prompt.View())
	case ok:
		b.WriteString(m.Spinner.View() + " " + s.Title)
		b.WriteString("\n\n")
		b.WriteString(subtleStyle.Render("Listen..."))
	}

	if len(m.Log) > 0 {
		b.WriteString("\n\n")
		for _, line := range m.Log {
			b.WriteString(logStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("q: quit"))
	return b.String()
}
