package output

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	DefaultSampleRate = beep.SampleRate(44100)
	DefaultBuffer     = 100 * time.Millisecond
)

// Speaker is the host audio device. beep's speaker is a process singleton,
// so only one Speaker should be in use at a time.
type Speaker struct {
	format beep.Format
	buffer time.Duration

	once    sync.Once
	initErr error
	opened  atomic.Bool
}

var _ Sink = (*Speaker)(nil)

func NewSpeaker(sr beep.SampleRate, buffer time.Duration) *Speaker {
	if sr <= 0 {
		sr = DefaultSampleRate
	}
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Speaker{
		format: beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2},
		buffer: buffer,
	}
}

func (s *Speaker) Format() beep.Format { return s.format }

// Attach starts pulling from st. The device is opened on first use; if
// that fails, every later Attach returns the same error.
func (s *Speaker) Attach(st beep.Streamer) error {
	s.once.Do(func() {
		sr := s.format.SampleRate
		if err := speaker.Init(sr, sr.N(s.buffer)); err != nil {
			s.initErr = fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
			return
		}
		s.opened.Store(true)
	})
	if s.initErr != nil {
		return s.initErr
	}
	speaker.Play(st)
	return nil
}

// Close releases the device. It does nothing if the device was never
// opened.
func (s *Speaker) Close() {
	if s.opened.CompareAndSwap(true, false) {
		speaker.Close()
	}
}
