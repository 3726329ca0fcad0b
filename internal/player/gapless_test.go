package player

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
)

// mockStreamer produces a fixed number of samples then returns ok=false.
type mockStreamer struct {
	samples   int
	sampleVal float64
	produced  int
	maxChunk  int // if set, never returns more than this per call
}

func (m *mockStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := m.samples - m.produced
	if remaining <= 0 {
		return 0, false
	}
	toWrite := min(len(samples), remaining)
	if m.maxChunk > 0 {
		toWrite = min(toWrite, m.maxChunk)
	}
	for i := range toWrite {
		samples[i] = [2]float64{m.sampleVal, m.sampleVal}
	}
	m.produced += toWrite
	return toWrite, true
}

func (m *mockStreamer) Err() error { return nil }

func mockEntry(m *mockStreamer) entry {
	return entry{src: &mockSource{mockStreamer: m}, stream: m}
}

// mockSource exposes a mockStreamer as a source.
type mockSource struct {
	*mockStreamer
}

func (s *mockSource) Format() beep.Format     { return testFormat }
func (s *mockSource) Len() int                { return s.samples }
func (s *mockSource) Position() int           { return s.produced }
func (s *mockSource) Duration() time.Duration { return testRate.D(s.samples) }
func (s *mockSource) IsStatic() bool          { return false }
func (s *mockSource) Close() error            { return nil }

func TestQueueStreamer_BasicTransition(t *testing.T) {
	var advanced []entry
	q := &queueStreamer{onAdvance: func(e entry) { advanced = append(advanced, e) }}
	q.push(mockEntry(&mockStreamer{samples: 10, sampleVal: 1.0}))
	q.push(mockEntry(&mockStreamer{samples: 10, sampleVal: 2.0}))

	// Read all samples in one go (20 total)
	buf := make([][2]float64, 25)
	n, ok := q.Stream(buf)

	assert.True(t, ok)
	assert.Equal(t, 20, n)
	assert.Len(t, advanced, 2)
	assert.Zero(t, q.len())

	// First 10 should be 1.0, next 10 should be 2.0
	for i := range 10 {
		assert.Equal(t, 1.0, buf[i][0], "sample %d should be from first", i)
	}
	for i := 10; i < 20; i++ {
		assert.Equal(t, 2.0, buf[i][0], "sample %d should be from second", i)
	}
}

func TestQueueStreamer_Empty(t *testing.T) {
	q := &queueStreamer{}

	buf := make([][2]float64, 10)
	n, ok := q.Stream(buf)

	assert.False(t, ok)
	assert.Zero(t, n)
	assert.Nil(t, q.head())
}

func TestQueueStreamer_PushDuringPlayback(t *testing.T) {
	q := &queueStreamer{}
	q.push(mockEntry(&mockStreamer{samples: 20, sampleVal: 1.0}))

	// Read some samples before adding the next entry
	buf := make([][2]float64, 10)
	n, ok := q.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 10, n)

	q.push(mockEntry(&mockStreamer{samples: 10, sampleVal: 2.0}))

	// Read remaining - should transition
	buf2 := make([][2]float64, 25)
	n, ok = q.Stream(buf2)
	assert.True(t, ok)
	assert.Equal(t, 20, n) // 10 from first + 10 from second
}

func TestQueueStreamer_ShortReadsAreNotTheEnd(t *testing.T) {
	q := &queueStreamer{}
	q.push(mockEntry(&mockStreamer{samples: 30, sampleVal: 1.0, maxChunk: 7}))
	q.push(mockEntry(&mockStreamer{samples: 10, sampleVal: 2.0}))

	buf := make([][2]float64, 35)
	n, _ := q.Stream(buf)

	assert.Equal(t, 35, n)
	assert.Equal(t, 1.0, buf[29][0])
	assert.Equal(t, 2.0, buf[30][0])
}

func TestQueueStreamer_Clear(t *testing.T) {
	q := &queueStreamer{}
	q.push(mockEntry(&mockStreamer{samples: 5}))
	q.push(mockEntry(&mockStreamer{samples: 5}))

	entries := q.clear()
	assert.Len(t, entries, 2)
	assert.Zero(t, q.len())
}
