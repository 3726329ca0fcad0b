// Package source provides the audio content played by a player: streaming
// sources decoded on demand and static sources fully buffered in memory.
package source

import (
	"errors"
	"time"

	"github.com/gopxl/beep/v2"
)

// Source is a unit of audio content pulled frame by frame through Stream.
// A short read or ok == false signals end-of-stream.
type Source interface {
	beep.Streamer
	Format() beep.Format
	// Len returns the length in frames, or -1 when unknown.
	Len() int
	Position() int
	Duration() time.Duration
	IsStatic() bool
	Close() error
}

var errNotSeekable = errors.New("source is not seekable")

// seekable is implemented by sources whose cursor can be moved.
type seekable interface {
	Seekable() bool
	Seek(p int) error
	Position() int
}

// Streaming decodes its content incrementally, in a single pass.
type Streaming struct {
	streamer beep.Streamer
	seeker   beep.StreamSeeker // nil when the underlying streamer cannot seek
	closer   func() error
	format   beep.Format
	length   int
	pos      int
	path     string
	closed   bool
}

// FromStreamer wraps a beep streamer as a streaming source. Seeking and
// closing are delegated when the streamer supports them.
func FromStreamer(s beep.Streamer, format beep.Format) *Streaming {
	st := &Streaming{
		streamer: s,
		format:   format,
		length:   -1,
	}
	if sk, ok := s.(beep.StreamSeeker); ok {
		if inner, ok := s.(seekable); !ok || inner.Seekable() {
			st.seeker = sk
		}
	}
	if c, ok := s.(beep.StreamCloser); ok {
		st.closer = c.Close
	}
	return st
}

// Stream implements beep.Streamer.
func (s *Streaming) Stream(samples [][2]float64) (n int, ok bool) {
	if s.closed {
		return 0, false
	}
	n, ok = s.streamer.Stream(samples)
	s.pos += n
	return n, ok
}

// Err implements beep.Streamer.
func (s *Streaming) Err() error { return s.streamer.Err() }

func (s *Streaming) Format() beep.Format { return s.format }

func (s *Streaming) Len() int {
	if s.seeker != nil {
		return s.seeker.Len()
	}
	return s.length
}

func (s *Streaming) Position() int {
	if s.seeker != nil {
		return s.seeker.Position()
	}
	return s.pos
}

func (s *Streaming) Duration() time.Duration { return duration(s.format, s.Len()) }

func (s *Streaming) IsStatic() bool { return false }

// Path returns the file the source was loaded from, if any.
func (s *Streaming) Path() string { return s.path }

// Seekable reports whether Seek is supported.
func (s *Streaming) Seekable() bool { return s.seeker != nil }

// Seek moves the cursor to frame p.
func (s *Streaming) Seek(p int) error {
	if s.seeker == nil {
		return errNotSeekable
	}
	if err := s.seeker.Seek(p); err != nil {
		return err
	}
	s.pos = p
	return nil
}

// Close releases the decoder. Calling it more than once is harmless.
func (s *Streaming) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.closer != nil {
		return s.closer()
	}
	return nil
}

func duration(f beep.Format, n int) time.Duration {
	if n < 0 || f.SampleRate <= 0 {
		return 0
	}
	return f.SampleRate.D(n)
}
