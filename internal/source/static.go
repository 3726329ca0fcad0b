package source

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
)

const defaultMaxStatic = 10 * time.Minute

var maxStatic atomic.Int64

func init() {
	maxStatic.Store(int64(defaultMaxStatic))
}

// SetMaxStaticDuration bounds how much audio NewStatic buffers.
// Non-positive values restore the default.
func SetMaxStaticDuration(d time.Duration) {
	if d <= 0 {
		d = defaultMaxStatic
	}
	maxStatic.Store(int64(d))
}

// Static is a source fully realized in memory. The buffer is shared by
// every copy made with Dup; each copy has its own cursor.
type Static struct {
	buf    *beep.Buffer
	cursor beep.StreamSeeker
}

var _ Source = (*Static)(nil)

// NewStatic buffers src entirely.
//
// Wrapping a Static shares its buffer instead of copying it, so nested
// wrapping always yields a single layer. A seekable input is read from its
// first frame and its cursor is restored afterwards; a non-seekable input is
// consumed.
func NewStatic(src Source) (*Static, error) {
	if st, ok := src.(*Static); ok {
		return st.Dup(), nil
	}

	format := src.Format()
	if format.Precision == 0 {
		format.Precision = 2
	}
	if format.NumChannels == 0 {
		format.NumChannels = 2
	}

	if sk, ok := src.(seekable); ok && sk.Seekable() {
		pos := sk.Position()
		if err := sk.Seek(0); err != nil {
			return nil, &DecodeError{Path: pathOf(src), Err: err}
		}
		defer func() { _ = sk.Seek(pos) }()
	}

	limit := format.SampleRate.N(time.Duration(maxStatic.Load()))
	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(limit+1, src))

	if err := src.Err(); err != nil {
		return nil, &DecodeError{Path: pathOf(src), Err: err}
	}
	if buf.Len() > limit {
		return nil, fmt.Errorf("%w: more than %v", ErrTooLong, format.SampleRate.D(limit))
	}

	return &Static{buf: buf, cursor: buf.Streamer(0, buf.Len())}, nil
}

// Stream implements beep.Streamer.
func (s *Static) Stream(samples [][2]float64) (n int, ok bool) {
	return s.cursor.Stream(samples)
}

// Err implements beep.Streamer.
func (s *Static) Err() error { return s.cursor.Err() }

func (s *Static) Format() beep.Format { return s.buf.Format() }

func (s *Static) Len() int { return s.buf.Len() }

func (s *Static) Position() int { return s.cursor.Position() }

func (s *Static) Duration() time.Duration { return duration(s.buf.Format(), s.buf.Len()) }

func (s *Static) IsStatic() bool { return true }

func (s *Static) Seekable() bool { return true }

func (s *Static) Seek(p int) error { return s.cursor.Seek(p) }

// Rewind moves the cursor back to the first frame.
func (s *Static) Rewind() { _ = s.cursor.Seek(0) }

// Dup returns a copy sharing the buffer, with its cursor at the first frame.
func (s *Static) Dup() *Static {
	return &Static{buf: s.buf, cursor: s.buf.Streamer(0, s.buf.Len())}
}

// Size returns the number of bytes held by the buffer.
func (s *Static) Size() int { return s.buf.Len() * s.buf.Format().Width() }

// Close is a no-op: the buffer is released once no copy references it.
func (s *Static) Close() error { return nil }

func pathOf(src Source) string {
	if p, ok := src.(interface{ Path() string }); ok {
		return p.Path()
	}
	return ""
}
