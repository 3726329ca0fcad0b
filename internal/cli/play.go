package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/dustin/go-humanize"
	"github.com/gopxl/beep/v2"
	"github.com/spf13/cobra"

	"github.com/llehouerou/wavecue/internal/errmsg"
	"github.com/llehouerou/wavecue/internal/output"
	"github.com/llehouerou/wavecue/internal/player"
	"github.com/llehouerou/wavecue/internal/source"
)

type PlayParams struct {
	Files  []string `pos:"true" required:"true" help:"Sound files to play, back to back."`
	Static bool     `short:"s" help:"Decode every file into memory before playing."`
}

func PlayCmd() *cobra.Command {
	return boa.CmdT[PlayParams]{
		Use:         "play",
		Short:       "Play sound files one after the other",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *PlayParams, cmd *cobra.Command, args []string) {
			_, opts, err := setup()
			if err != nil {
				fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
				os.Exit(1)
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			exitCode := runPlay(ctx, params, output.Default(), opts, os.Stdout, os.Stderr)
			output.CloseDefault()
			if exitCode != 0 {
				os.Exit(exitCode)
			}
		},
	}.ToCobra()
}

func runPlay(ctx context.Context, params *PlayParams, sink output.Sink, opts []player.Option, stdout, stderr io.Writer) int {
	p := player.New(sink, opts...)
	defer func() { _ = p.Delete() }()

	queued := 0
	for _, path := range params.Files {
		src, err := source.Load(path, !params.Static)
		if err != nil {
			op := errmsg.OpSourceLoad
			if errors.Is(err, source.ErrTooLong) {
				op = errmsg.OpSourceBuffer
			}
			fmt.Fprintln(stderr, errmsg.FormatWith(op, path, err))
			continue
		}
		if err := p.Queue(src); err != nil {
			_ = src.Close()
			fmt.Fprintln(stderr, errmsg.FormatWith(errmsg.OpQueueAdd, path, err))
			continue
		}
		queued++
		fmt.Fprintln(stdout, describe(path, src))
	}
	if queued == 0 {
		return 1
	}

	sub := p.Subscribe()
	if err := p.Play(); err != nil {
		fmt.Fprintln(stderr, errmsg.Format(errmsg.OpPlaybackStart, err))
		return 1
	}

	failed := queued < len(params.Files)
	for {
		select {
		case <-sub.EOS:
			if failed {
				return 1
			}
			return 0
		case e := <-sub.Error:
			if e.Operation == player.OpAttach {
				fmt.Fprintln(stderr, errmsg.Format(errmsg.OpDeviceOpen, e.Err))
				return 1
			}
			fmt.Fprintln(stderr, errmsg.Format(errmsg.OpPlaybackAudio, e))
			failed = true
		case <-ctx.Done():
			return 130
		}
	}
}

// describe renders one line about a queued source.
func describe(path string, src source.Source) string {
	line := fmt.Sprintf("%s  %s  %s", filepath.Base(path), src.Duration().Round(10*time.Millisecond), formatRate(src.Format()))
	if st, ok := src.(*source.Static); ok {
		line += "  " + humanize.IBytes(uint64(st.Size())) //nolint:gosec // size is never negative
	}
	return line
}

func formatRate(f beep.Format) string {
	return fmt.Sprintf("%s Hz, %d ch", humanize.Comma(int64(f.SampleRate)), f.NumChannels)
}
