// SPDX-License-Identifier: MIT

// Package config loads the setcover YAML configuration.
//
// A missing file is not an error for the CLI: DefaultConfig is used as is.
// Values from a file are layered over the defaults, then validated.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/setcover/setcover"
)

// ErrInvalidConfig indicates a configuration that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of setcover.yaml.
type Config struct {
	Solver SolverConfig `yaml:"solver"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Batch  BatchConfig  `yaml:"batch"`
}

// SolverConfig controls dispatch.
type SolverConfig struct {
	Threshold float64 `yaml:"threshold" validate:"gt=0"`
	Algorithm string  `yaml:"algorithm" validate:"oneof=auto exact greedy dp"`
}

// LogConfig controls logrus output.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// ServerConfig controls `setcover serve`.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
	// MaxBodyBytes caps request bodies on /v1/solve.
	MaxBodyBytes int64 `yaml:"max_body_bytes" validate:"gt=0"`
	// MaxUniverse caps the universe size accepted on /v1/solve.
	MaxUniverse int `yaml:"max_universe" validate:"gte=1"`
}

// BatchConfig controls `setcover batch`.
type BatchConfig struct {
	Jobs int `yaml:"jobs" validate:"gte=1,lte=256"`
}

// DefaultMaxUniverse is the default server.max_universe.
const DefaultMaxUniverse = 1 << 16

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Solver: SolverConfig{
			Threshold: setcover.DefaultThreshold,
			Algorithm: setcover.Auto.String(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxBodyBytes: 8 << 20,
			MaxUniverse:  DefaultMaxUniverse,
		},
		Batch: BatchConfig{
			Jobs: 4,
		},
	}
}

var validate = validator.New()

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// AlgorithmValue parses Solver.Algorithm.
func (c Config) AlgorithmValue() (setcover.Algorithm, error) {
	return setcover.ParseAlgorithm(c.Solver.Algorithm)
}

// Parse decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse the config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads path. An empty path yields DefaultConfig.
func Load(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}

	return Parse(data)
}

// Write stores cfg as YAML at path.
func Write(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
