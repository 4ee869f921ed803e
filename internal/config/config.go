// Package config provides Viper-based configuration loading for the fight simulator.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is the zap sink, e.g. "stderr" or a file path.
	Output string `mapstructure:"output"`
}

// ContentConfig locates the static YAML content.
type ContentConfig struct {
	ItemsDir    string `mapstructure:"items_dir"`
	MonstersDir string `mapstructure:"monsters_dir"`
}

// SimulationConfig holds the defaults applied to each simulation run.
type SimulationConfig struct {
	// Mode is "stochastic" or "averaged".
	Mode string `mapstructure:"mode"`
	// Workers bounds concurrent simulations; 0 means one per CPU.
	Workers int `mapstructure:"workers"`
	// Trials is the number of stochastic fights used to estimate a win rate.
	Trials int `mapstructure:"trials"`
	// Seed seeds trial sources; 0 draws a fresh seed per run.
	Seed             uint64        `mapstructure:"seed"`
	Utility1Quantity int           `mapstructure:"utility1_quantity"`
	Utility2Quantity int           `mapstructure:"utility2_quantity"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging"`
	Content    ContentConfig    `mapstructure:"content"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateSimulation(c.Simulation); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return errors.New("logging.output must not be empty")
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	if c.ItemsDir == "" {
		errs = append(errs, "content.items_dir must not be empty")
	}
	if c.MonstersDir == "" {
		errs = append(errs, "content.monsters_dir must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateSimulation(s SimulationConfig) error {
	var errs []string
	if s.Mode != "stochastic" && s.Mode != "averaged" {
		errs = append(errs, fmt.Sprintf("simulation.mode must be one of [stochastic, averaged], got %q", s.Mode))
	}
	if s.Workers < 0 {
		errs = append(errs, fmt.Sprintf("simulation.workers must be >= 0, got %d", s.Workers))
	}
	if s.Trials < 1 {
		errs = append(errs, fmt.Sprintf("simulation.trials must be >= 1, got %d", s.Trials))
	}
	if s.Utility1Quantity < 0 {
		errs = append(errs, fmt.Sprintf("simulation.utility1_quantity must be >= 0, got %d", s.Utility1Quantity))
	}
	if s.Utility2Quantity < 0 {
		errs = append(errs, fmt.Sprintf("simulation.utility2_quantity must be >= 0, got %d", s.Utility2Quantity))
	}
	if s.Timeout < 0 {
		errs = append(errs, "simulation.timeout must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and
// environment variables only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with FIGHTSIM_ prefix
	v.SetEnvPrefix("FIGHTSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("content.items_dir", "content/items")
	v.SetDefault("content.monsters_dir", "content/monsters")

	v.SetDefault("simulation.mode", "stochastic")
	v.SetDefault("simulation.workers", 0)
	v.SetDefault("simulation.trials", 1000)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.utility1_quantity", 100)
	v.SetDefault("simulation.utility2_quantity", 100)
	v.SetDefault("simulation.timeout", "30s")
}
