// Package scenario holds the listening checks run by the checker and the
// renderer. Each check drives one or more players on a sink, then asks the
// listener a yes/no question about what was heard.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/llehouerou/wavecue/internal/output"
	"github.com/llehouerou/wavecue/internal/player"
)

// ErrUnknown is returned by Lookup for names not in the catalog.
var ErrUnknown = errors.New("unknown check")

var errNoSink = errors.New("no sink")

// Question is asked after a step of a check has played.
type Question struct {
	Scenario string
	Step     int
	Text     string
}

// Env is what a check runs against.
type Env struct {
	Sink output.Sink

	// SampleRate of generated sounds. Zero means the sink's rate.
	SampleRate beep.SampleRate

	// MediaDir holds alert.wav and receive.wav for the file playback check.
	MediaDir string

	PlayerOptions []player.Option

	// Wait lets d of playback happen. Defaults to sleeping.
	Wait func(ctx context.Context, d time.Duration) error

	// Ask blocks until q is answered. Nil skips questions.
	Ask func(ctx context.Context, q Question) error
}

// Scenario is a single listening check.
type Scenario struct {
	Name      string
	Title     string
	Questions []string

	// NeedsMedia is set for checks that play files from Env.MediaDir.
	NeedsMedia bool

	run func(ctx context.Context, r *runner) error
}

// Run plays the check on env, asking each question in turn.
func (s Scenario) Run(ctx context.Context, env Env) error {
	if env.Sink == nil {
		return errNoSink
	}
	if env.SampleRate <= 0 {
		env.SampleRate = env.Sink.Format().SampleRate
	}
	if env.Wait == nil {
		env.Wait = Sleep
	}
	r := &runner{scenario: s, env: env}
	defer r.cleanup()
	if err := s.run(ctx, r); err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	return nil
}

// Sleep waits d in wall time, or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Catalog returns every check, in the order the checker runs them.
func Catalog() []Scenario {
	return []Scenario{
		playQueue,
		queuePlay,
		pauseQueue,
		pauseSound,
		nextOnEOS,
		staticWrapping,
		fireAndForget,
		playbackFiles,
	}
}

// Lookup returns the check called name.
func Lookup(name string) (Scenario, error) {
	for _, s := range Catalog() {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Select returns the checks called names, or the whole catalog when names
// is empty.
func Select(names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return Catalog(), nil
	}
	out := make([]Scenario, 0, len(names))
	for _, name := range names {
		s, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
