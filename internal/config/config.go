// Package config resolves CLI defaults from, in priority order, command
// flags (handled by the caller), environment variables, an optional
// ~/.fileseq.yaml, and built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix Viper uses for environment variable overrides,
// e.g. FILESEQ_HIDDEN.
const EnvPrefix = "FILESEQ"

// Config holds the subset of CLI defaults configurable outside of flags.
type Config struct {
	Hidden  bool `mapstructure:"hidden"`
	NoColor bool `mapstructure:"no_color"`
}

// Default returns the built-in configuration, used when no config file or
// environment variable overrides a field.
func Default() Config {
	return Config{Hidden: false, NoColor: false}
}

// Load resolves Config from ~/.fileseq.yaml (if present) and FILESEQ_*
// environment variables, layered over Default.
func Load() (Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("hidden", defaults.Hidden)
	v.SetDefault("no_color", defaults.NoColor)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.SetConfigName(".fileseq")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("reading %s: %w", filepath.Join("~", ".fileseq.yaml"), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing configuration: %w", err)
	}
	return cfg, nil
}
