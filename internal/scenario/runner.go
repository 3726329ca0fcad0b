package scenario

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/llehouerou/wavecue/internal/player"
	"github.com/llehouerou/wavecue/internal/source"
)

// ErrNoEOS is returned when a player is still playing well past the end of
// what was queued on it.
var ErrNoEOS = errors.New("end of stream never reached")

const (
	pollInterval = 20 * time.Millisecond
	eosGrace     = 2 * time.Second
)

// runner carries the state of one check run.
type runner struct {
	scenario Scenario
	env      Env
	players  []*player.Player
	step     int
}

func (r *runner) newPlayer() *player.Player {
	p := player.New(r.env.Sink, r.env.PlayerOptions...)
	r.players = append(r.players, p)
	return p
}

func (r *runner) noise(d time.Duration) source.Source {
	return source.WhiteNoise(d, r.env.SampleRate)
}

func (r *runner) tone(freq float64, d time.Duration) (source.Source, error) {
	return source.Sine(freq, d, r.env.SampleRate)
}

func (r *runner) media(name string) (source.Source, error) {
	return source.Load(filepath.Join(r.env.MediaDir, name), false)
}

func (r *runner) wait(ctx context.Context, d time.Duration) error {
	return r.env.Wait(ctx, d)
}

// ask poses the next question of the check.
func (r *runner) ask(ctx context.Context) error {
	if r.step >= len(r.scenario.Questions) {
		return fmt.Errorf("no question for step %d", r.step)
	}
	q := Question{Scenario: r.scenario.Name, Step: r.step, Text: r.scenario.Questions[r.step]}
	r.step++
	if r.env.Ask == nil {
		return nil
	}
	return r.env.Ask(ctx, q)
}

// waitEOS lets playback run until p has drained its queue. It gives up
// once limit plus a grace period has elapsed.
func (r *runner) waitEOS(ctx context.Context, p *player.Player, limit time.Duration) error {
	sub := p.Subscribe()
	for elapsed := time.Duration(0); elapsed < limit+eosGrace; elapsed += pollInterval {
		select {
		case <-sub.EOS:
			return nil
		case e := <-sub.Error:
			return e
		default:
		}
		if p.State() != player.Playing {
			return nil
		}
		if err := r.wait(ctx, pollInterval); err != nil {
			return err
		}
	}
	return ErrNoEOS
}

func (r *runner) cleanup() {
	for _, p := range r.players {
		_ = p.Delete()
	}
}
