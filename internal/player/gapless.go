package player

import (
	"github.com/gopxl/beep/v2"

	"github.com/llehouerou/wavecue/internal/source"
)

var _ beep.Streamer = (*queueStreamer)(nil)

type entry struct {
	src    source.Source
	stream beep.Streamer // src, resampled to the sink rate when needed
}

// queueStreamer plays its entries back to back. When the head runs out,
// the next entry fills the rest of the same buffer, so there is no gap
// between sources. Not safe for concurrent use; the Player guards it.
type queueStreamer struct {
	entries []entry
	// onAdvance is called after the head has been removed.
	onAdvance func(ended entry)
}

// Stream implements beep.Streamer. It fills as much of samples as the queued
// entries allow.
func (q *queueStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && len(q.entries) > 0 {
		k, more := q.entries[0].stream.Stream(samples[n:])
		n += k
		if more && k > 0 {
			// A short read is not the end; ask the head again.
			continue
		}
		ended := q.pop()
		if q.onAdvance != nil {
			q.onAdvance(ended)
		}
	}
	return n, n > 0 || len(q.entries) > 0
}

// Err implements beep.Streamer. Source errors are reported through
// onAdvance instead.
func (q *queueStreamer) Err() error { return nil }

func (q *queueStreamer) push(e entry) {
	q.entries = append(q.entries, e)
}

func (q *queueStreamer) pop() entry {
	e := q.entries[0]
	q.entries[0] = entry{}
	q.entries = q.entries[1:]
	return e
}

// head returns the playing entry, or nil.
func (q *queueStreamer) head() *entry {
	if len(q.entries) == 0 {
		return nil
	}
	return &q.entries[0]
}

func (q *queueStreamer) len() int { return len(q.entries) }

// clear empties the queue and returns what it held.
func (q *queueStreamer) clear() []entry {
	entries := q.entries
	q.entries = nil
	return entries
}
