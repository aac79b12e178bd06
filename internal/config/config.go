package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database   DatabaseConfig
	Log        LogConfig
	UI         UIConfig
	Typewriter TypewriterConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// LogConfig holds file-logging settings. The TUI owns the terminal, so logs
// always go to a file.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ReducedMotion bool `mapstructure:"reduced_motion"`
}

// TypewriterConfig holds the hero animation timings, in milliseconds, plus an
// optional playlist override. Zero values fall back to the package defaults.
type TypewriterConfig struct {
	TypeDelayMS      int      `mapstructure:"type_delay_ms"`
	EraseDelayMS     int      `mapstructure:"erase_delay_ms"`
	PostTypePauseMS  int      `mapstructure:"post_type_pause_ms"`
	PostErasePauseMS int      `mapstructure:"post_erase_pause_ms"`
	StartDelayMS     int      `mapstructure:"start_delay_ms"`
	Playlist         []string `mapstructure:"playlist"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// VERDANT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "verdant", "verdant.db"))
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "verdant", "verdant.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.reduced_motion", false)
	v.SetDefault("typewriter.type_delay_ms", 0)
	v.SetDefault("typewriter.erase_delay_ms", 0)
	v.SetDefault("typewriter.post_type_pause_ms", 0)
	v.SetDefault("typewriter.post_erase_pause_ms", 0)
	v.SetDefault("typewriter.start_delay_ms", 0)
	v.SetDefault("typewriter.playlist", []string{})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("VERDANT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "verdant"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VERDANT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
