package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavecue/internal/errmsg"
)

// Result is the outcome of one question, or of a check that could not run.
type Result struct {
	Scenario string
	Step     int
	Question string
	Answer   bool
	Skipped  bool
	Err      error
}

// Failed reports whether the result counts against the run.
func (r Result) Failed() bool {
	return r.Err != nil || (!r.Skipped && !r.Answer)
}

var (
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	skipStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	nameStyle  = lipgloss.NewStyle().Bold(true)
	totalStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

// Summary renders one line per result followed by the totals.
func Summary(results []Result) string {
	var b strings.Builder
	var passed, failed, skipped int

	for _, r := range results {
		name := nameStyle.Render(r.Scenario)
		switch {
		case r.Err != nil:
			failed++
			b.WriteString(failStyle.Render("✗ ") + name + "  " + errmsg.FormatWith(errmsg.OpScenarioRun, r.Scenario, r.Err))
		case r.Skipped:
			skipped++
			b.WriteString(skipStyle.Render("- ") + name + skipStyle.Render("  skipped, no media folder"))
		case r.Answer:
			passed++
			b.WriteString(passStyle.Render("✓ ") + name + "  " + r.Question)
		default:
			failed++
			b.WriteString(failStyle.Render("✗ ") + name + "  " + r.Question)
		}
		b.WriteString("\n")
	}

	b.WriteString(totalStyle.Render(fmt.Sprintf("%d passed, %d failed, %d skipped", passed, failed, skipped)))
	return b.String()
}
