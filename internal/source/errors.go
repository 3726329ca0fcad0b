package source

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrNotFound is returned by Load when the path does not exist.
	// errors.Is(err, fs.ErrNotExist) also holds for it.
	ErrNotFound = fmt.Errorf("source not found: %w", fs.ErrNotExist)

	// ErrTooLong is returned when a static source would exceed the
	// configured maximum duration.
	ErrTooLong = errors.New("source too long to buffer")
)

// DecodeError reports content that is malformed or in an unsupported format.
type DecodeError struct {
	Path string // empty for in-memory sources
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "decode: " + e.Err.Error()
	}
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
