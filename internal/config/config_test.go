package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VERDANT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path == "" {
		t.Error("database path default missing")
	}
	if !strings.HasSuffix(cfg.Database.Path, "verdant.db") {
		t.Errorf("database path = %q, want verdant.db suffix", cfg.Database.Path)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
	if cfg.UI.ReducedMotion {
		t.Error("reduced motion should default to off")
	}
	if cfg.Typewriter.TypeDelayMS != 0 {
		t.Errorf("typewriter type delay default = %d, want 0 (package default applies)", cfg.Typewriter.TypeDelayMS)
	}
	if len(cfg.Typewriter.Playlist) != 0 {
		t.Errorf("playlist default = %v, want empty", cfg.Typewriter.Playlist)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := `
[database]
path = "/tmp/custom.db"

[log]
level = "debug"

[ui]
reduced_motion = true

[typewriter]
type_delay_ms = 40
playlist = ["one", "two"]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("VERDANT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("database path = %q", cfg.Database.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	if !cfg.UI.ReducedMotion {
		t.Error("reduced motion not read from file")
	}
	if cfg.Typewriter.TypeDelayMS != 40 {
		t.Errorf("type delay = %d, want 40", cfg.Typewriter.TypeDelayMS)
	}
	if len(cfg.Typewriter.Playlist) != 2 || cfg.Typewriter.Playlist[0] != "one" {
		t.Errorf("playlist = %v", cfg.Typewriter.Playlist)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("VERDANT_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("VERDANT_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q, want env override warn", cfg.Log.Level)
	}
}
