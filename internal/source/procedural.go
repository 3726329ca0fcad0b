package source

import (
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
)

// noiseAmplitude keeps generated noise well below full scale.
const noiseAmplitude = 0.5

func generatedFormat(sr beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
}

func bounded(s beep.Streamer, sr beep.SampleRate, d time.Duration) *Streaming {
	n := sr.N(d)
	st := FromStreamer(beep.Take(n, s), generatedFormat(sr))
	st.length = n
	return st
}

// WhiteNoise returns d of uniform white noise.
func WhiteNoise(d time.Duration, sr beep.SampleRate) *Streaming {
	noise := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := (rand.Float64()*2 - 1) * noiseAmplitude //nolint:gosec // audio noise
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
	return bounded(noise, sr, d)
}

// Sine returns d of a sine tone at freq Hz.
func Sine(freq float64, d time.Duration, sr beep.SampleRate) (*Streaming, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return bounded(tone, sr, d), nil
}

// Silence returns d of digital silence.
func Silence(d time.Duration, sr beep.SampleRate) *Streaming {
	zero := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		clear(samples)
		return len(samples), true
	})
	return bounded(zero, sr, d)
}
