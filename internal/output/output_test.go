package output

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constant produces n frames of value v.
func constant(n int, v float64) beep.Streamer {
	left := n
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if left <= 0 {
			return 0, false
		}
		k := min(len(samples), left)
		for i := range k {
			samples[i] = [2]float64{v, v}
		}
		left -= k
		return k, true
	})
}

func TestCapture_MixesAttachedStreamers(t *testing.T) {
	c := NewCapture(8000)
	require.NoError(t, c.Attach(constant(100, 0.25)))
	require.NoError(t, c.Attach(constant(100, 0.5)))
	assert.Equal(t, 2, c.Attached())

	buf := c.Pull(100)
	for i, f := range buf {
		assert.InDelta(t, 0.75, f[0], 1e-9, "frame %d", i)
	}
	assert.Equal(t, 100, c.Frames())

	// Drained streamers are detached and leave silence behind.
	buf = c.Pull(10)
	assert.Equal(t, 0, c.Attached())
	assert.Equal(t, [2]float64{}, buf[0])
	assert.Equal(t, 110, c.Frames())
}

func TestCapture_Fail(t *testing.T) {
	c := NewCapture(0)
	assert.Equal(t, DefaultSampleRate, c.Format().SampleRate)

	c.Fail(ErrDeviceUnavailable)
	err := c.Attach(constant(1, 0))
	assert.ErrorIs(t, err, ErrDeviceUnavailable)
	assert.Equal(t, 0, c.Attached())
}

func TestNewSpeaker_Defaults(t *testing.T) {
	s := NewSpeaker(0, 0)
	assert.Equal(t, DefaultSampleRate, s.Format().SampleRate)
	assert.Equal(t, 2, s.Format().NumChannels)
	assert.Equal(t, DefaultBuffer, s.buffer)

	s = NewSpeaker(48000, 50*time.Millisecond)
	assert.Equal(t, beep.SampleRate(48000), s.Format().SampleRate)
}

func TestSpeaker_StickyInitError(t *testing.T) {
	s := NewSpeaker(0, 0)
	s.once.Do(func() {
		s.initErr = errors.Join(ErrDeviceUnavailable, errors.New("no card"))
	})

	err := s.Attach(constant(1, 0))
	require.ErrorIs(t, err, ErrDeviceUnavailable)
	assert.Equal(t, err, s.Attach(constant(1, 0)))
}

func TestSpeaker_CloseWithoutDevice(t *testing.T) {
	s := NewSpeaker(0, 0)
	assert.NotPanics(t, s.Close, "never opened")

	s.once.Do(func() {
		s.initErr = errors.Join(ErrDeviceUnavailable, errors.New("no card"))
	})
	assert.NotPanics(t, s.Close, "open failed")
	assert.False(t, s.opened.Load())
	require.ErrorIs(t, s.Attach(constant(1, 0)), ErrDeviceUnavailable)
}

func TestCloseDefault(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	SetDefault(NewCapture(8000))
	assert.NotPanics(t, CloseDefault)

	SetDefault(NewSpeaker(0, 0))
	assert.NotPanics(t, CloseDefault)

	SetDefault(nil)
	assert.NotPanics(t, CloseDefault)
}

func TestDefault(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	c := NewCapture(8000)
	SetDefault(c)
	assert.Same(t, c, Default())

	SetDefault(nil)
	_, ok := Default().(*Speaker)
	assert.True(t, ok)
}
