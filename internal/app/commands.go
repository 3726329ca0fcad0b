// internal/app/commands.go
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavecue/internal/player"
	"github.com/llehouerou/wavecue/internal/scenario"
	"github.com/llehouerou/wavecue/internal/stderr"
)

// RunCheck returns a command that runs s to completion.
func RunCheck(ctx context.Context, index int, s scenario.Scenario, env scenario.Env) tea.Cmd {
	return func() tea.Msg {
		return CheckDoneMsg{Index: index, Err: s.Run(ctx, env)}
	}
}

// WatchQuestions returns a command that waits for the next question.
func (m Model) WatchQuestions() tea.Cmd {
	asks := m.asks
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case req := <-asks:
			return QuestionMsg{req: req}
		case <-ctx.Done():
			return nil
		}
	}
}

// WatchStderr returns a command that waits for stderr output from the
// audio backend.
func WatchStderr() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-stderr.Messages
		if !ok {
			return nil // Channel closed
		}
		return StderrMsg{Line: line}
	}
}

// WatchPlayerErrors returns a command that waits for a fire-and-forget
// playback failure.
func WatchPlayerErrors() tea.Cmd {
	return func() tea.Msg {
		return PlayerErrorMsg{Err: <-player.Errors}
	}
}
