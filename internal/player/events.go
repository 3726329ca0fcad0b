package player

import "github.com/llehouerou/wavecue/internal/source"

// StateChange is emitted when the player state changes.
type StateChange struct {
	Previous State
	Current  State
}

// SourceChange is emitted when the head of the queue changes: a source
// queued onto an empty queue, a source ending, or Next.
//
// Current is nil when the queue is empty afterwards.
type SourceChange struct {
	Previous source.Source
	Current  source.Source
}

// EOS is emitted once each time the queue drains during playback.
type EOS struct{}

// Operations reported by ErrorEvent.
const (
	OpAttach = "attach" // the sink refused the player; playback halted
	OpStream = "stream" // a source failed mid-stream; playback advanced
)

// ErrorEvent is emitted when an error occurs away from the caller, on the
// audio path.
type ErrorEvent struct {
	Operation string // OpAttach or OpStream
	Err       error
}

func (e ErrorEvent) Error() string { return e.Operation + ": " + e.Err.Error() }

func (e ErrorEvent) Unwrap() error { return e.Err }
