package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DefaultVolume      float64 `koanf:"default_volume"`       // initial volume when no saved state exists
	SeekStepSeconds    int     `koanf:"seek_step_seconds"`    // left/right arrow seek step
	VolumeStep         float64 `koanf:"volume_step"`          // up/down arrow volume step
	ErrorDisplaySecs   int     `koanf:"error_display_seconds"`
	Notifications      bool    `koanf:"notifications"`   // desktop notification on track change
	RestoreSession     bool    `koanf:"restore_session"` // reload last playlist at startup
	LogLevel           string  `koanf:"log_level"`       // debug, info, warn, error
	LogFile            string  `koanf:"log_file"`        // empty disables file logging
}

// Load reads configuration files in priority order (last wins) and applies
// defaults for anything unset.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		DefaultVolume:    1.0,
		SeekStepSeconds:  5,
		VolumeStep:       0.1,
		ErrorDisplaySecs: 3,
		Notifications:    true,
		RestoreSession:   true,
		LogLevel:         "info",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.DefaultVolume < 0 || cfg.DefaultVolume > 1 {
		cfg.DefaultVolume = 1.0
	}
	if cfg.SeekStepSeconds <= 0 {
		cfg.SeekStepSeconds = 5
	}
	if cfg.VolumeStep <= 0 || cfg.VolumeStep > 1 {
		cfg.VolumeStep = 0.1
	}
	if cfg.ErrorDisplaySecs <= 0 {
		cfg.ErrorDisplaySecs = 3
	}
	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

// SeekStep returns the seek step as a duration.
func (c *Config) SeekStep() time.Duration {
	return time.Duration(c.SeekStepSeconds) * time.Second
}

// ErrorDisplay returns the error display window as a duration.
func (c *Config) ErrorDisplay() time.Duration {
	return time.Duration(c.ErrorDisplaySecs) * time.Second
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/minplayer/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "minplayer", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
