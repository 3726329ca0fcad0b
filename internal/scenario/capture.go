package scenario

import (
	"context"
	"time"

	"github.com/llehouerou/wavecue/internal/output"
)

// captureQuantum is the number of frames requested per pull, close to what
// a device callback asks for.
const captureQuantum = 512

// PullWait returns a Wait function that advances playback on c by pulling
// frames instead of sleeping. Each pulled chunk is passed to record when it
// is not nil.
func PullWait(c *output.Capture, record func(frames [][2]float64)) func(context.Context, time.Duration) error {
	sr := c.Format().SampleRate
	return func(ctx context.Context, d time.Duration) error {
		for n := sr.N(d); n > 0; {
			if err := ctx.Err(); err != nil {
				return err
			}
			chunk := min(n, captureQuantum)
			frames := c.Pull(chunk)
			if record != nil {
				record(frames)
			}
			n -= chunk
		}
		return nil
	}
}
