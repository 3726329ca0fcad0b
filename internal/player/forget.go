package player

import (
	"github.com/llehouerou/wavecue/internal/output"
	"github.com/llehouerou/wavecue/internal/source"
)

// Errors receives failures of PlayAndForget playback. Nobody holds a handle
// on those players, so this is the only place their errors show up.
// Sends never block; errors are dropped when nobody reads.
var Errors = make(chan error, 16)

// PlayAndForget plays src on the default sink and returns immediately.
// The player deletes itself when src ends or fails.
func PlayAndForget(src source.Source) {
	PlayAndForgetOn(output.Default(), src)
}

// PlayAndForgetOn is PlayAndForget on a given sink.
func PlayAndForgetOn(sink output.Sink, src source.Source, opts ...Option) {
	p := New(sink, opts...)
	_ = p.OnEOS(func() { _ = p.Delete() })
	_ = p.OnError(func(err error) {
		report(err)
		_ = p.Delete()
	})
	if err := p.Queue(src); err != nil {
		report(err)
		_ = p.Delete()
		return
	}
	_ = p.Play()
}

func report(err error) {
	select {
	case Errors <- err:
	default:
	}
}
