package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration. It is built once at startup
// and passed into each component; nothing reads viper after Load.
type Config struct {
	Wordlist WordlistConfig
	Session  SessionConfig
	Plate    PlateConfig
	UI       UIConfig
	Log      LogConfig
}

// WordlistConfig locates the fixed 2048-entry BIP-39 English list.
type WordlistConfig struct {
	Path string
}

// SessionConfig holds the interactive session settings.
type SessionConfig struct {
	Words int
}

// PlateConfig holds the physical plate geometry.
type PlateConfig struct {
	Rows int
}

// UIConfig holds presentation settings.
type UIConfig struct {
	PunchMarker string `mapstructure:"punch_marker"`
	EmptyMarker string `mapstructure:"empty_marker"`
}

// LogConfig holds event-log settings. An empty path disables logging.
type LogConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use
// prefix SEEDPLATE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("wordlist.path", "bip39_en.txt")
	v.SetDefault("session.words", 24)
	v.SetDefault("plate.rows", 12)
	v.SetDefault("ui.punch_marker", "●")
	v.SetDefault("ui.empty_marker", "·")
	v.SetDefault("log.path", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SEEDPLATE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "seedplate"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SEEDPLATE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Wordlist.Path == "" {
		return fmt.Errorf("config: wordlist.path must be set")
	}
	if c.Session.Words <= 0 || c.Plate.Rows <= 0 {
		return fmt.Errorf("config: session.words and plate.rows must be positive")
	}
	if c.Session.Words%c.Plate.Rows != 0 {
		return fmt.Errorf("config: session.words (%d) must be a multiple of plate.rows (%d)", c.Session.Words, c.Plate.Rows)
	}
	if c.UI.PunchMarker == "" || c.UI.EmptyMarker == "" {
		return fmt.Errorf("config: ui markers must be non-empty")
	}
	return nil
}
