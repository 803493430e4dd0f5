// Package config handles loading the chapsplit configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/jackzampolin/chapsplit/internal/home"
)

// Config is the full tool configuration.
type Config struct {
	Patterns PatternConfig `mapstructure:"patterns" yaml:"patterns"`
	Output   OutputConfig  `mapstructure:"output" yaml:"output"`
}

// PatternConfig holds the chapter classification pattern sets.
// Entries are regular expressions matched against bookmark titles.
type PatternConfig struct {
	Include []string `mapstructure:"include" yaml:"include"`
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`
}

// OutputConfig holds output naming behavior.
type OutputConfig struct {
	SequencePrefixes  bool   `mapstructure:"sequence_prefixes" yaml:"sequence_prefixes"`
	UnidentifiedTitle string `mapstructure:"unidentified_title" yaml:"unidentified_title"`
}

// Load sets up viper with defaults and reads the config file if present.
// A missing config file is not an error; the defaults apply.
func Load(cfgFile string) (*Config, error) {
	defaults := DefaultConfig()
	viper.SetDefault("patterns.include", defaults.Patterns.Include)
	viper.SetDefault("patterns.exclude", defaults.Patterns.Exclude)
	viper.SetDefault("output.sequence_prefixes", defaults.Output.SequencePrefixes)
	viper.SetDefault("output.unidentified_title", defaults.Output.UnidentifiedTitle)

	// Environment variables with CHAPSPLIT_ prefix
	viper.SetEnvPrefix("CHAPSPLIT")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if h, err := home.New(""); err == nil {
			viper.AddConfigPath(h.Path())
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# chapsplit configuration
# patterns.include / patterns.exclude are regular expressions matched against
# bookmark titles when detecting chapters. Exclusions win over inclusions.

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
