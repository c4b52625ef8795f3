// SPDX-License-Identifier: MIT

// Package config loads the lvmat-demo settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/caarlos0/env/v11"
)

// MaxOrder caps the demo matrix order: Laplace expansion costs O(n!).
const MaxOrder = 9

// ErrInvalid is returned when a parsed value is outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the demo workload and logging settings.
type Config struct {
	// Order of the generated square matrices.
	Order int `env:"LVMAT_ORDER" envDefault:"4"`
	// Seed for the deterministic generator.
	Seed int64 `env:"LVMAT_SEED" envDefault:"1"`
	// MaxValue bounds the generated integer cells to [-MaxValue, MaxValue].
	MaxValue int `env:"LVMAT_MAX_VALUE" envDefault:"9"`
	// Trials is the number of matrices to generate.
	Trials int `env:"LVMAT_TRIALS" envDefault:"5"`
	// Epsilon is the singularity threshold handed to matrix.WithSingularEpsilon.
	Epsilon float64 `env:"LVMAT_EPSILON" envDefault:"0"`

	LogLevel slog.Level `env:"LVMAT_LOG_LEVEL" envDefault:"INFO"`
	LogColor bool       `env:"LVMAT_LOG_COLOR" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Order < 1 || c.Order > MaxOrder:
		return fmt.Errorf("LVMAT_ORDER=%d, want 1..%d: %w", c.Order, MaxOrder, ErrInvalid)
	case c.MaxValue < 1:
		return fmt.Errorf("LVMAT_MAX_VALUE=%d, want >= 1: %w", c.MaxValue, ErrInvalid)
	case c.Trials < 1:
		return fmt.Errorf("LVMAT_TRIALS=%d, want >= 1: %w", c.Trials, ErrInvalid)
	case math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0:
		return fmt.Errorf("LVMAT_EPSILON=%g, want finite >= 0: %w", c.Epsilon, ErrInvalid)
	}
	return nil
}
