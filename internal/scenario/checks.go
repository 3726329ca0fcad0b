package scenario

import (
	"context"
	"time"

	"github.com/llehouerou/wavecue/internal/player"
	"github.com/llehouerou/wavecue/internal/source"
)

const (
	alertFile   = "alert.wav"
	receiveFile = "receive.wav"

	toneFrequency = 440
)

var playQueue = Scenario{
	Name:      "play-queue",
	Title:     "Play, then queue a sound",
	Questions: []string{"Did you hear white noise for 1 second?"},
	run: func(ctx context.Context, r *runner) error {
		p := r.newPlayer()
		if err := p.Play(); err != nil {
			return err
		}
		if err := p.Queue(r.noise(time.Second)); err != nil {
			return err
		}
		if err := r.wait(ctx, time.Second); err != nil {
			return err
		}
		return r.ask(ctx)
	},
}

var queuePlay = Scenario{
	Name:      "queue-play",
	Title:     "Queue a sound, then play",
	Questions: []string{"Did you hear white noise for 1 second?"},
	run: func(ctx context.Context, r *runner) error {
		p := r.newPlayer()
		if err := p.Queue(r.noise(time.Second)); err != nil {
			return err
		}
		if err := p.Play(); err != nil {
			return err
		}
		if err := r.wait(ctx, time.Second); err != nil {
			return err
		}
		return r.ask(ctx)
	},
}

var pauseQueue = Scenario{
	Name:      "pause-queue",
	Title:     "Queue on a paused player",
	Questions: []string{"Did you not hear any sound?"},
	run: func(ctx context.Context, r *runner) error {
		p := r.newPlayer()
		if err := p.Pause(); err != nil {
			return err
		}
		if err := p.Queue(r.noise(time.Second)); err != nil {
			return err
		}
		if err := r.wait(ctx, time.Second); err != nil {
			return err
		}
		return r.ask(ctx)
	},
}

var pauseSound = Scenario{
	Name:  "pause-sound",
	Title: "Pause, resume and delete a playing sound",
	Questions: []string{
		"Did you hear white noise for 1 second and is it now silent?",
		"Do you hear white noise again?",
		"Is it silent again?",
	},
	run: func(ctx context.Context, r *runner) error {
		p := r.newPlayer()
		if err := p.Queue(r.noise(time.Minute)); err != nil {
			return err
		}
		if err := p.Play(); err != nil {
			return err
		}
		if err := r.wait(ctx, time.Second); err != nil {
			return err
		}
		if err := p.Pause(); err != nil {
			return err
		}
		if err := r.ask(ctx); err != nil {
			return err
		}

		if err := p.Play(); err != nil {
			return err
		}
		if err := r.wait(ctx, time.Second); err != nil {
			return err
		}
		if err := r.ask(ctx); err != nil {
			return err
		}

		if err := p.Delete(); err != nil {
			return err
		}
		if err := r.wait(ctx, time.Second); err != nil {
			return err
		}
		return r.ask(ctx)
	},
}

var nextOnEOS = Scenario{
	Name:  "next-on-eos",
	Title: "Play queued sounds back to back",
	Questions: []string{
		"Did you hear white noise for 1 second and then a tone at 440 Hz (A above middle C)?",
	},
	run: func(ctx context.Context, r *runner) error {
		tone, err := r.tone(toneFrequency, time.Second)
		if err != nil {
			return err
		}
		p := r.newPlayer()
		if err := p.Queue(r.noise(time.Second)); err != nil {
			return err
		}
		if err := p.Queue(tone); err != nil {
			return err
		}
		if err := p.Play(); err != nil {
			return err
		}
		if err := r.wait(ctx, 2*time.Second); err != nil {
			return err
		}
		return r.ask(ctx)
	},
}

var staticWrapping = Scenario{
	Name:      "static-wrapping",
	Title:     "Play a sound wrapped twice in a static source",
	Questions: []string{"Did you hear white noise for 1 second?"},
	run: func(ctx context.Context, r *runner) error {
		inner, err := source.NewStatic(r.noise(time.Second))
		if err != nil {
			return err
		}
		outer, err := source.NewStatic(inner)
		if err != nil {
			return err
		}
		p := r.newPlayer()
		if err := p.Queue(outer); err != nil {
			return err
		}
		if err := p.Play(); err != nil {
			return err
		}
		if err := r.wait(ctx, time.Second); err != nil {
			return err
		}
		return r.ask(ctx)
	},
}

var fireAndForget = Scenario{
	Name:       "fire-and-forget",
	Title:      "Play a sound without keeping its player",
	Questions:  []string{"Did you hear the alert sound playing?"},
	NeedsMedia: true,
	run: func(ctx context.Context, r *runner) error {
		alert, err := r.media(alertFile)
		if err != nil {
			return err
		}
		player.PlayAndForgetOn(r.env.Sink, alert, r.env.PlayerOptions...)
		if err := r.wait(ctx, alert.Duration()); err != nil {
			return err
		}
		return r.ask(ctx)
	},
}

var playbackFiles = Scenario{
	Name:  "playback-files",
	Title: "Play sound files, waiting for the end of each",
	Questions: []string{
		"Did you hear the alert sound playing?",
		"Did you hear the receive sound playing?",
	},
	NeedsMedia: true,
	run: func(ctx context.Context, r *runner) error {
		alert, err := r.media(alertFile)
		if err != nil {
			return err
		}
		receive, err := r.media(receiveFile)
		if err != nil {
			return err
		}

		p := r.newPlayer()
		if err := p.Play(); err != nil {
			return err
		}
		if err := p.Queue(alert); err != nil {
			return err
		}
		if err := r.waitEOS(ctx, p, alert.Duration()); err != nil {
			return err
		}
		if err := r.ask(ctx); err != nil {
			return err
		}

		// A drained player is idle again and needs Play.
		if err := p.Queue(receive); err != nil {
			return err
		}
		if err := p.Play(); err != nil {
			return err
		}
		if err := r.waitEOS(ctx, p, receive.Duration()); err != nil {
			return err
		}
		return r.ask(ctx)
	},
}
