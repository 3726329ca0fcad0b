// Package output delivers frames produced by players to an audio sink.
//
// Sinks pull: they request N frames from each attached streamer, which
// supplies up to N. A short read or ok == false detaches the streamer.
// Streamers attached to the same sink are mixed by the sink.
package output

import (
	"errors"
	"sync"

	"github.com/gopxl/beep/v2"
)

// ErrDeviceUnavailable is wrapped by errors from sinks that cannot reach
// their output device.
var ErrDeviceUnavailable = errors.New("audio device unavailable")

// Sink consumes frames from attached streamers.
type Sink interface {
	Format() beep.Format
	Attach(s beep.Streamer) error
}

var (
	defaultMu   sync.Mutex
	defaultSink Sink
)

// Default returns the process-wide sink, a Speaker unless SetDefault
// replaced it.
func Default() Sink {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSink == nil {
		defaultSink = NewSpeaker(DefaultSampleRate, DefaultBuffer)
	}
	return defaultSink
}

// CloseDefault releases the device behind the process-wide sink, if any.
func CloseDefault() {
	defaultMu.Lock()
	s := defaultSink
	defaultMu.Unlock()
	if c, ok := s.(interface{ Close() }); ok {
		c.Close()
	}
}

// SetDefault replaces the process-wide sink.
func SetDefault(s Sink) {
	defaultMu.Lock()
	defaultSink = s
	defaultMu.Unlock()
}
