package output

import (
	"sync"

	"github.com/gopxl/beep/v2"
)

// Capture is an offline sink: frames are produced only when Pull is called,
// the way a device callback would request them.
type Capture struct {
	mu     sync.Mutex
	format beep.Format
	mixer  beep.Mixer
	frames int
	fail   error
}

var _ Sink = (*Capture)(nil)

func NewCapture(sr beep.SampleRate) *Capture {
	if sr <= 0 {
		sr = DefaultSampleRate
	}
	return &Capture{format: beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}}
}

func (c *Capture) Format() beep.Format { return c.format }

func (c *Capture) Attach(s beep.Streamer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail != nil {
		return c.fail
	}
	c.mixer.Add(s)
	return nil
}

// Fail makes subsequent Attach calls return err, simulating a missing device.
func (c *Capture) Fail(err error) {
	c.mu.Lock()
	c.fail = err
	c.mu.Unlock()
}

// Pull requests n frames from the attached streamers.
func (c *Capture) Pull(n int) [][2]float64 {
	buf := make([][2]float64, n)
	c.mu.Lock()
	c.mixer.Stream(buf)
	c.frames += n
	c.mu.Unlock()
	return buf
}

// Attached returns the number of streamers still being pulled.
func (c *Capture) Attached() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mixer.Len()
}

// Frames returns the total number of frames pulled so far.
func (c *Capture) Frames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}
