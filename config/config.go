// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: starlane.yaml schema, defaults, load/save and validation.
// Policy:
//   - Missing fields fall back to DefaultConfig values.
//   - Validate never mutates; applyDefaults never fails.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/starlane/analytics"
)

// ErrInvalidConfig is returned by Validate and LoadFromPath for bad values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvConfigPath names the environment variable holding an explicit config path.
const EnvConfigPath = "STARLANE_CONFIG"

// FileName is the config file looked up in the working directory.
const FileName = "starlane.yaml"

// Config is the on-disk CLI configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Render    RenderConfig    `yaml:"render"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// AnalyticsConfig feeds analytics.NewRunner.
type AnalyticsConfig struct {
	Sizes           []int `yaml:"sizes"`
	EdgesMultiplier int   `yaml:"edges_multiplier"`
	RunsPerSize     int   `yaml:"runs_per_size"`
	Seed            int64 `yaml:"seed"`
}

// RenderConfig controls DOT output.
type RenderConfig struct {
	RankDir string `yaml:"rankdir"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
	rankDirs   = []string{"LR", "RL", "TB", "BT"}
)

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Analytics: AnalyticsConfig{
			Sizes:           slices.Clone(analytics.DefaultSizes),
			EdgesMultiplier: analytics.DefaultEdgesMultiplier,
			RunsPerSize:     analytics.DefaultRunsPerSize,
			Seed:            1,
		},
		Render: RenderConfig{RankDir: "LR"},
	}
}

// Load reads $STARLANE_CONFIG or ./starlane.yaml, falling back to defaults.
// The returned path is empty when defaults were used.
func Load() (*Config, string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return LoadFromPath(path)
	}
	if _, err := os.Stat(FileName); err == nil {
		return LoadFromPath(FileName)
	}

	return DefaultConfig(), "", nil
}

// LoadFromPath loads, defaults and validates the file at path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate reports the first out-of-range field.
func (c *Config) Validate() error {
	switch {
	case !slices.Contains(logLevels, c.Log.Level):
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	case !slices.Contains(logFormats, c.Log.Format):
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	case !slices.Contains(rankDirs, c.Render.RankDir):
		return fmt.Errorf("%w: render.rankdir %q", ErrInvalidConfig, c.Render.RankDir)
	case c.Analytics.EdgesMultiplier < 1:
		return fmt.Errorf("%w: analytics.edges_multiplier %d", ErrInvalidConfig, c.Analytics.EdgesMultiplier)
	case c.Analytics.RunsPerSize < 1:
		return fmt.Errorf("%w: analytics.runs_per_size %d", ErrInvalidConfig, c.Analytics.RunsPerSize)
	}
	for _, n := range c.Analytics.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: analytics.sizes entry %d", ErrInvalidConfig, n)
		}
	}

	return nil
}

// RunnerOptions translates the analytics section into analytics options.
func (c *Config) RunnerOptions() []analytics.Option {
	return []analytics.Option{
		analytics.WithEdgesMultiplier(c.Analytics.EdgesMultiplier),
		analytics.WithRunsPerSize(c.Analytics.RunsPerSize),
		analytics.WithSeed(c.Analytics.Seed),
	}
}

// applyDefaults fills in missing values.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Render.RankDir == "" {
		c.Render.RankDir = d.Render.RankDir
	}
	if len(c.Analytics.Sizes) == 0 {
		c.Analytics.Sizes = d.Analytics.Sizes
	}
	if c.Analytics.EdgesMultiplier == 0 {
		c.Analytics.EdgesMultiplier = d.Analytics.EdgesMultiplier
	}
	if c.Analytics.RunsPerSize == 0 {
		c.Analytics.RunsPerSize = d.Analytics.RunsPerSize
	}
	if c.Analytics.Seed == 0 {
		c.Analytics.Seed = d.Analytics.Seed
	}
}
