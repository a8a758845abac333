package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// The test process runs in a directory without a config.toml, so Load
	// returns pure defaults.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DefaultVolume != 1.0 {
		t.Errorf("DefaultVolume = %v, want 1.0", cfg.DefaultVolume)
	}
	if cfg.SeekStepSeconds != 5 {
		t.Errorf("SeekStepSeconds = %d, want 5", cfg.SeekStepSeconds)
	}
	if cfg.VolumeStep != 0.1 {
		t.Errorf("VolumeStep = %v, want 0.1", cfg.VolumeStep)
	}
	if cfg.ErrorDisplaySecs != 3 {
		t.Errorf("ErrorDisplaySecs = %d, want 3", cfg.ErrorDisplaySecs)
	}
	if !cfg.Notifications {
		t.Error("Notifications = false, want true")
	}
	if !cfg.RestoreSession {
		t.Error("RestoreSession = false, want true")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := &Config{SeekStepSeconds: 10, ErrorDisplaySecs: 3}

	if got := cfg.SeekStep(); got != 10*time.Second {
		t.Errorf("SeekStep() = %v, want 10s", got)
	}
	if got := cfg.ErrorDisplay(); got != 3*time.Second {
		t.Errorf("ErrorDisplay() = %v, want 3s", got)
	}
}

func TestExpandPath(t *testing.T) {
	if got := expandPath("/var/log/minplayer.log"); got != "/var/log/minplayer.log" {
		t.Errorf("expandPath absolute = %q, changed", got)
	}
	if got := expandPath(""); got != "" {
		t.Errorf("expandPath empty = %q, want empty", got)
	}
	got := expandPath("~/logs/minplayer.log")
	if got == "~/logs/minplayer.log" || got[0] == '~' {
		t.Errorf("expandPath(~...) = %q, tilde not expanded", got)
	}
}
