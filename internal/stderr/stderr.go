//go:build !windows

// Package stderr captures output that the audio backend (ALSA, through the
// speaker's device layer) writes straight to file descriptor 2. While the
// checker UI owns the terminal, those lines are shown in the UI instead.
package stderr

import (
	"os"
	"syscall"
)

// Messages receives device lines captured from the audio backend, each
// prefixed with "audio device: ".
var Messages = make(chan string, 100)

var (
	savedFD  int
	writeEnd *os.File
	started  bool
)

// Start redirects fd 2 into Messages. Call it before the speaker opens
// the device. On error nothing is redirected.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	savedFD, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(savedFD)
		r.Close()
		w.Close()
		return err
	}

	writeEnd = w
	started = true

	// Messages is closed once the write end is gone and the pipe drained.
	go func() {
		forward(r, Messages)
		r.Close()
		close(Messages)
	}()

	return nil
}

// WriteOriginal writes to the terminal's stderr while capture is active.
func WriteOriginal(msg string) {
	if savedFD > 0 {
		_, _ = syscall.Write(savedFD, []byte(msg))
	}
}

// Stop restores fd 2. Messages is closed after the remaining lines are
// delivered.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(savedFD, int(os.Stderr.Fd()))
	_ = syscall.Close(savedFD)
	savedFD = 0
	writeEnd.Close()
	started = false
}
