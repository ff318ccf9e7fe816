package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/meenmo/mocurve/interp"
)

// Config holds curve tooling parameters.
type Config struct {
	// DefaultInterpolator is used by curve definitions that do not name one.
	DefaultInterpolator interp.Interpolator `yaml:"default_interpolator"`

	// DefaultLeftExtrapolator and DefaultRightExtrapolator fill in missing
	// extrapolator names in curve definitions.
	DefaultLeftExtrapolator  interp.Extrapolator `yaml:"default_left_extrapolator"`
	DefaultRightExtrapolator interp.Extrapolator `yaml:"default_right_extrapolator"`

	// NodeTolerance is the absolute tolerance for node reproduction checks.
	NodeTolerance float64 `yaml:"node_tolerance"`

	// DerivativeTolerance bounds |analytic - finite difference| for derivative
	// and sensitivity checks.
	DerivativeTolerance float64 `yaml:"derivative_tolerance"`

	// BumpSize is the node bump used for finite-difference sensitivities.
	BumpSize float64 `yaml:"bump_size"`

	// Workers limits how many curves are verified concurrently.
	Workers int `yaml:"workers"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DefaultConfig provides production-ready default values.
var DefaultConfig = Config{
	DefaultInterpolator:      interp.TimeSquareInterpolator,
	DefaultLeftExtrapolator:  interp.FlatExtrapolator,
	DefaultRightExtrapolator: interp.FlatExtrapolator,
	NodeTolerance:            1e-12,
	DerivativeTolerance:      1e-6,
	BumpSize:                 1e-6,
	Workers:                  4,
	Logging: LoggingConfig{
		Level: "info",
	},
}

// Load reads a YAML file over DefaultConfig. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and that the default strategies are registered.
func (c Config) Validate() error {
	if _, err := interp.LookupInterpolator(c.DefaultInterpolator.Name()); err != nil {
		return err
	}
	if _, err := interp.LookupExtrapolator(c.DefaultLeftExtrapolator.Name()); err != nil {
		return err
	}
	if _, err := interp.LookupExtrapolator(c.DefaultRightExtrapolator.Name()); err != nil {
		return err
	}
	if c.NodeTolerance <= 0 {
		return fmt.Errorf("node_tolerance must be positive, got %v", c.NodeTolerance)
	}
	if c.DerivativeTolerance <= 0 {
		return fmt.Errorf("derivative_tolerance must be positive, got %v", c.DerivativeTolerance)
	}
	if c.BumpSize <= 0 {
		return fmt.Errorf("bump_size must be positive, got %v", c.BumpSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
