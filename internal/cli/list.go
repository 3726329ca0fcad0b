package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/dustin/go-humanize"
	"github.com/gopxl/beep/v2"
	"github.com/spf13/cobra"

	"github.com/llehouerou/wavecue/internal/config"
	"github.com/llehouerou/wavecue/internal/errmsg"
	"github.com/llehouerou/wavecue/internal/scenario"
	"github.com/llehouerou/wavecue/internal/source"
)

func ListCmd() *cobra.Command {
	return boa.CmdT[boa.NoParams]{
		Use:   "list",
		Short: "List the checks, supported formats and output settings",
		RunFunc: func(_ *boa.NoParams, cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
				os.Exit(1)
			}
			runList(cfg, os.Stdout)
		},
	}.ToCobra()
}

func runList(cfg *config.Config, stdout io.Writer) {
	fmt.Fprintln(stdout, "Checks:")
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	for _, s := range scenario.Catalog() {
		note := ""
		if s.NeedsMedia {
			note = "(needs media folder)"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", s.Name, s.Title, note)
	}
	_ = w.Flush()

	fmt.Fprintf(stdout, "\nFormats: %s\n", strings.Join(source.Extensions(), " "))

	out := cfg.GetOutputConfig()
	src := cfg.GetSourceConfig()
	rate := beepRate(out.SampleRate)
	// Static sources are buffered as 16-bit stereo.
	staticBytes := uint64(rate.N(src.MaxStatic())) * 4 //nolint:gosec // positive
	fmt.Fprintf(stdout, "\nOutput: %s Hz, %s buffer, resample quality %d\n",
		humanize.Comma(int64(out.SampleRate)), out.Buffer(), out.ResampleQuality)
	fmt.Fprintf(stdout, "Static sources: up to %s (%s in memory)\n",
		src.MaxStatic(), humanize.IBytes(staticBytes))
}

func beepRate(hz int) beep.SampleRate {
	return beep.SampleRate(hz)
}
