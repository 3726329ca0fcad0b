package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/GiGurra/boa/pkg/boa"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/wavecue/internal/app"
	"github.com/llehouerou/wavecue/internal/errmsg"
	"github.com/llehouerou/wavecue/internal/output"
	"github.com/llehouerou/wavecue/internal/scenario"
	"github.com/llehouerou/wavecue/internal/stderr"
)

type CheckParams struct {
	Checks []string `pos:"true" optional:"true" help:"Checks to run (see 'wavecue list'). All of them when none is given."`
	Media  string   `short:"m" optional:"true" help:"Folder holding alert.wav and receive.wav. Overrides media_folder from the config."`
}

func CheckCmd() *cobra.Command {
	return boa.CmdT[CheckParams]{
		Use:         "check",
		Short:       "Run the listening checks on the audio device",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *CheckParams, cmd *cobra.Command, args []string) {
			exitCode := runCheck(params, os.Stderr)
			if exitCode != 0 {
				os.Exit(exitCode)
			}
		},
	}.ToCobra()
}

func runCheck(params *CheckParams, errOut io.Writer) int {
	// Capture stderr before the speaker initializes ALSA
	if err := stderr.Start(); err != nil {
		fmt.Fprintf(errOut, "Warning: could not capture stderr: %v\n", err)
	}
	defer stderr.Stop()
	defer output.CloseDefault()

	cfg, opts, err := setup()
	if err != nil {
		fmt.Fprintln(errOut, errmsg.Format(errmsg.OpConfigLoad, err))
		return 1
	}

	checks, err := scenario.Select(params.Checks)
	if err != nil {
		fmt.Fprintln(errOut, errmsg.Format(errmsg.OpScenarioRun, err))
		return 1
	}

	media := cfg.MediaFolder
	if params.Media != "" {
		media = params.Media
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := app.New(ctx, checks, scenario.Env{
		Sink:          output.Default(),
		MediaDir:      media,
		PlayerOptions: opts,
	})
	defer m.Close()

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		stderr.WriteOriginal(errmsg.Format(errmsg.OpInitialize, err) + "\n")
		return 1
	}
	if result, ok := final.(app.Model); ok && result.Failed() {
		return 1
	}
	return 0
}
