package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extWAV  = ".wav"
	extFLAC = ".flac"
	extMP3  = ".mp3"
	extOGG  = ".ogg"
)

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decodeFunc{
	extWAV: func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return wav.Decode(f)
	},
	extFLAC: func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		// Some taggers prepend an ID3v2 tag the FLAC decoder does not expect.
		if err := skipID3v2(f); err != nil {
			return nil, beep.Format{}, err
		}
		return flac.Decode(f)
	},
	extMP3: func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return decodeMP3(f)
	},
	extOGG: func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return vorbis.Decode(f)
	},
}

// Extensions returns the supported file extensions, sorted.
func Extensions() []string {
	exts := make([]string, 0, len(decoders))
	for ext := range decoders {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// IsAudioFile reports whether path has a supported extension.
func IsAudioFile(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load opens and decodes the file at path. With streaming set, the returned
// source decodes on demand and owns the open file; otherwise the content is
// buffered into a Static source and the file is closed before returning.
func Load(path string, streaming bool) (Source, error) {
	s, err := Open(path)
	if err != nil {
		return nil, err
	}
	if streaming {
		return s, nil
	}
	defer s.Close()
	return NewStatic(s)
}

// Open returns a streaming source for the file at path.
func Open(path string) (*Streaming, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		f.Close()
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("unsupported format: %q", ext)}
	}

	streamer, format, err := decode(f)
	if err != nil {
		f.Close()
		return nil, &DecodeError{Path: path, Err: err}
	}

	s := FromStreamer(streamer, format)
	s.path = path
	s.closer = func() error {
		err := streamer.Close()
		_ = f.Close()
		return err
	}
	return s, nil
}

// skipID3v2 positions r after an ID3v2 tag, or back at the start if there is
// none.
func skipID3v2(r io.ReadSeeker) error {
	var header [10]byte
	if _, err := io.ReadFull(r, header[:]); err != nil || string(header[:3]) != "ID3" {
		_, serr := r.Seek(0, io.SeekStart)
		return serr
	}
	// Tag size is a syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err := r.Seek(10+size, io.SeekStart)
	return err
}
