package source

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

// go-mp3 always produces interleaved 16-bit stereo.
const mp3FrameBytes = 4

type mp3Decoder struct {
	dec    *mp3.Decoder
	closer io.Closer
	buf    []byte
	err    error
}

func decodeMP3(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	dec, err := mp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	if dec.SampleRate() <= 0 {
		return nil, beep.Format{}, errors.New("mp3: invalid sample rate")
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(dec.SampleRate()),
		NumChannels: 2,
		Precision:   2,
	}
	return &mp3Decoder{dec: dec, closer: rc, buf: make([]byte, 8192)}, format, nil
}

func (d *mp3Decoder) Stream(samples [][2]float64) (n int, ok bool) {
	if d.err != nil {
		return 0, false
	}
	want := len(samples) * mp3FrameBytes
	if len(d.buf) < want {
		d.buf = make([]byte, want)
	}
	read, err := io.ReadFull(d.dec, d.buf[:want])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		d.err = err
		return 0, false
	}
	n = read / mp3FrameBytes
	for i := range n {
		frame := d.buf[i*mp3FrameBytes:]
		left := int16(binary.LittleEndian.Uint16(frame))     //nolint:gosec // PCM sample
		right := int16(binary.LittleEndian.Uint16(frame[2:])) //nolint:gosec // PCM sample
		samples[i] = [2]float64{float64(left) / 32768, float64(right) / 32768}
	}
	return n, n > 0
}

func (d *mp3Decoder) Err() error { return d.err }

func (d *mp3Decoder) Len() int {
	return max(int(d.dec.SampleCount()), 0)
}

func (d *mp3Decoder) Position() int { return int(d.dec.SamplePosition()) }

func (d *mp3Decoder) Seek(p int) error {
	p = min(max(p, 0), d.Len())
	if err := d.dec.SeekToSample(int64(p)); err != nil {
		return err
	}
	d.err = nil
	return nil
}

func (d *mp3Decoder) Close() error { return d.closer.Close() }
