package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"

	"github.com/llehouerou/wavecue/internal/cli"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "wavecue",
		Short:   "Listening checks for the wavecue playback core",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			cli.CheckCmd(),
			cli.PlayCmd(),
			cli.ListCmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown (no build info)"
	}
	if bi.Main.Version == "" {
		return "unknown (no version)"
	}
	return bi.Main.Version
}
