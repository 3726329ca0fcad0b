// Renders a listening check to a WAV file instead of the audio device.
//
// Usage: renderwav CHECK OUT.wav [MEDIA_DIR]
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"

	"github.com/llehouerou/wavecue/internal/config"
	"github.com/llehouerou/wavecue/internal/errmsg"
	"github.com/llehouerou/wavecue/internal/output"
	"github.com/llehouerou/wavecue/internal/player"
	"github.com/llehouerou/wavecue/internal/scenario"
	"github.com/llehouerou/wavecue/internal/source"
)

// tail is pulled after the check returns so trailing sounds are kept.
const tail = 500 * time.Millisecond

func main() {
	if len(os.Args) < 3 {
		log.Fatalf("Usage: %s CHECK OUT.wav [MEDIA_DIR]", os.Args[0])
	}
	name, outPath := os.Args[1], os.Args[2]

	check, err := scenario.Lookup(name)
	if err != nil {
		log.Fatal(errmsg.Format(errmsg.OpScenarioRun, err))
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	out := cfg.GetOutputConfig()
	pl := cfg.GetPlayerConfig()
	source.SetMaxStaticDuration(cfg.GetSourceConfig().MaxStatic())

	mediaDir := cfg.MediaFolder
	if len(os.Args) > 3 {
		mediaDir = os.Args[3]
	}

	sink := output.NewCapture(beep.SampleRate(out.SampleRate))
	// Fire-and-forget playback goes to the default sink.
	output.SetDefault(sink)

	var frames [][2]float64
	wait := scenario.PullWait(sink, func(chunk [][2]float64) {
		frames = append(frames, chunk...)
	})

	env := scenario.Env{
		Sink:     sink,
		MediaDir: mediaDir,
		PlayerOptions: []player.Option{
			player.WithVolume(*pl.Volume),
			player.WithResampleQuality(out.ResampleQuality),
			player.WithEventBuffer(pl.EventBuffer),
		},
		Wait: wait,
		Ask: func(_ context.Context, q scenario.Question) error {
			log.Printf("[%s] at %s: %s", q.Scenario, sink.Format().SampleRate.D(len(frames)).Round(time.Millisecond), q.Text)
			return nil
		},
	}

	log.Printf("Rendering %s (%s)", check.Name, check.Title)
	ctx := context.Background()
	if err := check.Run(ctx, env); err != nil {
		log.Fatal(errmsg.FormatWith(errmsg.OpRender, name, err))
	}
	if err := wait(ctx, tail); err != nil {
		log.Fatal(errmsg.FormatWith(errmsg.OpRender, name, err))
	}

	if err := writeWAV(outPath, sink.Format(), frames); err != nil {
		log.Fatal(errmsg.FormatWith(errmsg.OpRender, outPath, err))
	}
	log.Printf("Wrote %d frames (%s) to %s", len(frames), sink.Format().SampleRate.D(len(frames)), outPath)
}

func writeWAV(path string, format beep.Format, frames [][2]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	i := 0
	s := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= len(frames) {
			return 0, false
		}
		n := copy(samples, frames[i:])
		i += n
		return n, true
	})
	return wav.Encode(f, s, format)
}
