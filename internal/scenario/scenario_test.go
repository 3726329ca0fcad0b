package scenario

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wavecue/internal/output"
	"github.com/llehouerou/wavecue/internal/source"
)

const testRate = beep.SampleRate(8000)

// recording collects pulled frames and the questions asked, with the frame
// offset at which each question came.
type recording struct {
	frames [][2]float64
	asked  []Question
	marks  []int
}

func newEnv(t *testing.T) (Env, *recording, *output.Capture) {
	t.Helper()
	c := output.NewCapture(testRate)
	rec := &recording{}
	env := Env{
		Sink: c,
		Wait: PullWait(c, func(frames [][2]float64) {
			rec.frames = append(rec.frames, frames...)
		}),
		Ask: func(_ context.Context, q Question) error {
			rec.asked = append(rec.asked, q)
			rec.marks = append(rec.marks, len(rec.frames))
			return nil
		},
	}
	return env, rec, c
}

func nonSilent(frames [][2]float64) int {
	n := 0
	for _, f := range frames {
		if f != [2]float64{} {
			n++
		}
	}
	return n
}

func peak(frames [][2]float64) float64 {
	p := 0.0
	for _, f := range frames {
		p = max(p, math.Abs(f[0]), math.Abs(f[1]))
	}
	return p
}

func writeConstWAV(t *testing.T, dir, name string, n int, v float64) {
	t.Helper()
	i := 0
	s := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}
		k := min(len(samples), n-i)
		for j := range k {
			samples[j] = [2]float64{v, v}
		}
		i += k
		return k, true
	})
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	format := beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, s, format))
}

func mediaDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeConstWAV(t, dir, alertFile, 4000, 0.25)
	writeConstWAV(t, dir, receiveFile, 2000, -0.25)
	return dir
}

func TestCatalog(t *testing.T) {
	names := make(map[string]bool)
	for _, s := range Catalog() {
		assert.NotEmpty(t, s.Title, s.Name)
		assert.NotEmpty(t, s.Questions, s.Name)
		assert.NotNil(t, s.run, s.Name)
		assert.False(t, names[s.Name], "duplicate %s", s.Name)
		names[s.Name] = true
	}
	assert.Len(t, names, 8)
}

func TestLookup(t *testing.T) {
	s, err := Lookup("pause-sound")
	require.NoError(t, err)
	assert.Len(t, s.Questions, 3)

	_, err = Lookup("nope")
	require.ErrorIs(t, err, ErrUnknown)
}

func TestSelect(t *testing.T) {
	all, err := Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, len(Catalog()))

	some, err := Select([]string{"queue-play", "play-queue"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "queue-play", some[0].Name)

	_, err = Select([]string{"play-queue", "bogus"})
	require.ErrorIs(t, err, ErrUnknown)
}

func TestRun_OneSecondOfNoise(t *testing.T) {
	for _, name := range []string{"play-queue", "queue-play", "static-wrapping"} {
		t.Run(name, func(t *testing.T) {
			env, rec, _ := newEnv(t)
			s, err := Lookup(name)
			require.NoError(t, err)

			require.NoError(t, s.Run(context.Background(), env))

			require.Len(t, rec.asked, 1)
			assert.Equal(t, Question{Scenario: name, Step: 0, Text: s.Questions[0]}, rec.asked[0])
			assert.Equal(t, 8000, rec.marks[0])
			require.Len(t, rec.frames, 8000)
			// Static buffers hold 16-bit samples, so the quietest noise
			// samples round to exact zero.
			assert.GreaterOrEqual(t, nonSilent(rec.frames), 7900)
			assert.NotZero(t, nonSilent(rec.frames[7900:]), "noise lasts the whole second")
			assert.LessOrEqual(t, peak(rec.frames), 0.5)
		})
	}
}

func TestRun_PauseQueueIsSilent(t *testing.T) {
	env, rec, c := newEnv(t)
	require.NoError(t, pauseQueue.Run(context.Background(), env))

	require.Len(t, rec.asked, 1)
	assert.Len(t, rec.frames, 8000)
	assert.Zero(t, nonSilent(rec.frames))
	assert.Zero(t, c.Attached(), "a player never played is never attached")
}

func TestRun_PauseSound(t *testing.T) {
	env, rec, c := newEnv(t)
	require.NoError(t, pauseSound.Run(context.Background(), env))

	require.Len(t, rec.asked, 3)
	assert.Equal(t, []int{8000, 16000, 24000}, rec.marks)
	assert.Equal(t, 8000, nonSilent(rec.frames[:8000]), "playing")
	assert.Equal(t, 8000, nonSilent(rec.frames[8000:16000]), "resumed")
	assert.Zero(t, nonSilent(rec.frames[16000:]), "deleted")
	assert.Zero(t, c.Attached())
}

func TestRun_NextOnEOS(t *testing.T) {
	env, rec, _ := newEnv(t)
	require.NoError(t, nextOnEOS.Run(context.Background(), env))

	require.Len(t, rec.asked, 1)
	require.Len(t, rec.frames, 16000)
	assert.LessOrEqual(t, peak(rec.frames[:8000]), 0.5, "noise first")
	assert.Greater(t, peak(rec.frames[8000:]), 0.9, "then the tone")
	// Sine zero crossings may land on a frame; anything more is a gap.
	assert.Greater(t, nonSilent(rec.frames), 15900)
}

func TestRun_PlaybackFiles(t *testing.T) {
	env, rec, _ := newEnv(t)
	env.MediaDir = mediaDir(t)

	require.NoError(t, playbackFiles.Run(context.Background(), env))

	require.Len(t, rec.asked, 2)
	alert := rec.frames[:rec.marks[0]]
	receive := rec.frames[rec.marks[0]:rec.marks[1]]

	loud := 0
	for _, f := range alert {
		if f[0] > 0.2 {
			loud++
		}
	}
	assert.Equal(t, 4000, loud)

	quiet := 0
	for _, f := range receive {
		if f[0] < -0.2 {
			quiet++
		}
	}
	assert.Equal(t, 2000, quiet)
}

func TestRun_FireAndForget(t *testing.T) {
	env, rec, _ := newEnv(t)
	env.MediaDir = mediaDir(t)

	require.NoError(t, fireAndForget.Run(context.Background(), env))

	require.Len(t, rec.asked, 1)
	assert.Equal(t, 4000, rec.marks[0])
	for _, f := range rec.frames {
		assert.InDelta(t, 0.25, f[0], 0.001)
	}
}

func TestRun_MissingMedia(t *testing.T) {
	env, rec, _ := newEnv(t)
	env.MediaDir = t.TempDir()

	err := playbackFiles.Run(context.Background(), env)
	require.ErrorIs(t, err, source.ErrNotFound)
	assert.Empty(t, rec.asked)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	env := Env{Sink: output.NewCapture(testRate)}
	err := pauseSound.Run(ctx, env)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_AskError(t *testing.T) {
	env, _, _ := newEnv(t)
	stop := errors.New("stop")
	env.Ask = func(context.Context, Question) error { return stop }

	require.ErrorIs(t, pauseSound.Run(context.Background(), env), stop)
}

func TestRun_NoSink(t *testing.T) {
	require.Error(t, playQueue.Run(context.Background(), Env{}))
}

func TestSleep(t *testing.T) {
	require.NoError(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
}
