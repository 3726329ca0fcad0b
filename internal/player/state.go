package player

// State represents the player state machine.
//
//	          play                 pause
//	┌──────┐ ──────▶ ┌─────────┐ ──────▶ ┌────────┐
//	│ Idle │         │ Playing │         │ Paused │
//	└──────┘ ◀────── └─────────┘ ◀────── └────────┘
//	          queue                play
//	         drained
//
// Every state moves to Deleted on Delete; Deleted is terminal.
//
// Playing with an empty queue is the armed state: the next Queue starts
// playback without another Play. Once the queue drains the player goes back
// to Idle and is no longer armed.
//
// No-ops:
//   - Play while Playing (the current source is not restarted)
//   - Pause while Idle or Paused
type State int

const (
	Idle State = iota
	Playing
	Paused
	Deleted
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Deleted:
		return "Deleted"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanPlay returns true if Play would change the state.
func (s State) CanPlay() bool {
	return s == Idle || s == Paused
}
