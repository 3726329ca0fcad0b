package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "wavecue"

type Config struct {
	// Folder holding the sounds used by the file playback check
	// (alert.wav, receive.wav).
	MediaFolder string `koanf:"media_folder"`

	Output OutputConfig `koanf:"output"`
	Source SourceConfig `koanf:"source"`
	Player PlayerConfig `koanf:"player"`
}

// OutputConfig holds the audio device settings.
type OutputConfig struct {
	SampleRate      int `koanf:"sample_rate"`      // Hz (8000-192000, default: 44100)
	BufferMs        int `koanf:"buffer_ms"`        // device buffer (10-1000, default: 100)
	ResampleQuality int `koanf:"resample_quality"` // 1-64 (default: 4)
}

// SourceConfig holds source loading settings.
type SourceConfig struct {
	MaxStaticSeconds int `koanf:"max_static_seconds"` // longest static source (default: 600)
}

// PlayerConfig holds player settings.
type PlayerConfig struct {
	Volume      *float64 `koanf:"volume"`       // 0.0-1.0 (default: 1.0)
	EventBuffer int      `koanf:"event_buffer"` // per-channel event buffer (default: 16)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.MediaFolder = expandPath(cfg.MediaFolder)

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/wavecue/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetOutputConfig returns the output configuration with defaults applied.
func (c *Config) GetOutputConfig() OutputConfig {
	cfg := c.Output

	if cfg.SampleRate < 8000 || cfg.SampleRate > 192000 {
		cfg.SampleRate = 44100
	}
	if cfg.BufferMs < 10 || cfg.BufferMs > 1000 {
		cfg.BufferMs = 100
	}
	if cfg.ResampleQuality < 1 || cfg.ResampleQuality > 64 {
		cfg.ResampleQuality = 4
	}

	return cfg
}

// Buffer returns the device buffer as a duration.
func (o OutputConfig) Buffer() time.Duration {
	return time.Duration(o.BufferMs) * time.Millisecond
}

// GetSourceConfig returns the source configuration with defaults applied.
func (c *Config) GetSourceConfig() SourceConfig {
	cfg := c.Source
	if cfg.MaxStaticSeconds <= 0 {
		cfg.MaxStaticSeconds = 600
	}
	return cfg
}

// MaxStatic returns the longest static source as a duration.
func (s SourceConfig) MaxStatic() time.Duration {
	return time.Duration(s.MaxStaticSeconds) * time.Second
}

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player

	volume := 1.0
	if cfg.Volume != nil {
		volume = min(max(*cfg.Volume, 0), 1)
	}
	cfg.Volume = &volume

	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = 16
	}

	return cfg
}
