// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the config file when --config is absent.
const EnvironmentVariable = "REGISTER_CONFIG"

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for interactive use.
	Development Environment = "development"
	// Production is for pipelines and services.
	Production Environment = "production"
)

// Config is the register command configuration.
type Config struct {
	// Environment selects which override section applies.
	Environment Environment `yaml:"environment"`

	// Log configures the command logger.
	Log LogConfig `yaml:"log"`

	// Hash configures bulk hashing.
	Hash HashConfig `yaml:"hash"`

	// Schema configures schema lookup.
	Schema SchemaConfig `yaml:"schema"`

	// Per-environment overrides, applied after the base config.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Log    *LogConfig    `yaml:"log,omitempty"`
	Hash   *HashConfig   `yaml:"hash,omitempty"`
	Schema *SchemaConfig `yaml:"schema,omitempty"`
}

// LogConfig configures the command logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: warn
	Level string `yaml:"level"`

	// Format is auto (text on a terminal, JSON otherwise), text, or
	// json.
	// Default: auto (development), json (production)
	Format string `yaml:"format"`
}

// HashConfig configures item hash with several inputs.
type HashConfig struct {
	// Workers bounds how many items are hashed at once. Zero uses
	// GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// SchemaConfig configures schema lookup.
type SchemaConfig struct {
	// Path is the schema used by item conform when --schema is not
	// given. Empty means --schema is required.
	Path string `yaml:"path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Environment: Development,
		Log: LogConfig{
			Level:  "warn",
			Format: "auto",
		},
	}
}

// Resolve loads the file named by flagPath, or by REGISTER_CONFIG when
// flagPath is empty. With neither set it returns Default.
func Resolve(flagPath string) (*Config, error) {
	if flagPath != "" {
		return LoadFile(flagPath)
	}
	if os.Getenv(EnvironmentVariable) != "" {
		return Load()
	}
	return Default(), nil
}

// Load loads configuration from the file named by REGISTER_CONFIG.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your register.yaml config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path and validates
// it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile merges a single configuration file into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Production:
		overrides = c.Production
		if overrides == nil {
			overrides = &ConfigOverrides{Log: &LogConfig{Format: "json"}}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Log != nil {
		if overrides.Log.Level != "" {
			c.Log.Level = overrides.Log.Level
		}
		if overrides.Log.Format != "" {
			c.Log.Format = overrides.Log.Format
		}
	}
	if overrides.Hash != nil && overrides.Hash.Workers != 0 {
		c.Hash.Workers = overrides.Hash.Workers
	}
	if overrides.Schema != nil && overrides.Schema.Path != "" {
		c.Schema.Path = overrides.Schema.Path
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	c.Schema.Path = expandVars(c.Schema.Path)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"auto", "text", "json"}
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", logLevels))
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", logFormats))
	}
	if c.Hash.Workers < 0 {
		errs = append(errs, fmt.Errorf("hash.workers must not be negative"))
	}

	return errors.Join(errs...)
}

// ParseLevel converts a log level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if !slices.Contains(logLevels, name) {
		return level, fmt.Errorf("invalid log level %q (expected one of %v)", name, logLevels)
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, err
	}
	return level, nil
}
