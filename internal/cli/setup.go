// Package cli implements the wavecue subcommands.
package cli

import (
	"github.com/GiGurra/boa/pkg/boa"

	"github.com/llehouerou/wavecue/internal/config"
	"github.com/llehouerou/wavecue/internal/output"
	"github.com/llehouerou/wavecue/internal/player"
	"github.com/llehouerou/wavecue/internal/source"
)

func defaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// setup loads the configuration and applies it to the process-wide
// defaults. It returns the options every player should be built with.
func setup() (*config.Config, []player.Option, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	apply(cfg)
	return cfg, playerOptions(cfg), nil
}

func apply(cfg *config.Config) {
	out := cfg.GetOutputConfig()
	source.SetMaxStaticDuration(cfg.GetSourceConfig().MaxStatic())
	output.SetDefault(output.NewSpeaker(beepRate(out.SampleRate), out.Buffer()))
}

func playerOptions(cfg *config.Config) []player.Option {
	out := cfg.GetOutputConfig()
	pl := cfg.GetPlayerConfig()
	return []player.Option{
		player.WithVolume(*pl.Volume),
		player.WithResampleQuality(out.ResampleQuality),
		player.WithEventBuffer(pl.EventBuffer),
	}
}
