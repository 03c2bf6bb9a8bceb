// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration of the omicsnet command.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/omicsnet/pipeline"
	"github.com/katalvlaran/omicsnet/spls"
)

// Environment variables that override the file.
const (
	EnvLogLevel = "OMICSNET_LOG_LEVEL"
	EnvSeed     = "OMICSNET_SEED"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// SyntheticConfig sizes the generated demo dataset used when no inputs are given.
type SyntheticConfig struct {
	Samples   int   `yaml:"samples"`
	FeaturesA int   `yaml:"features_a"`
	FeaturesB int   `yaml:"features_b"`
	Linked    int   `yaml:"linked"`
	Seed      int64 `yaml:"seed"`
}

// InputConfig points at sample×feature CSV files.
type InputConfig struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

// ParamsConfig mirrors pipeline.Params.
type ParamsConfig struct {
	Components int     `yaml:"components"`
	SparsityA  float64 `yaml:"sparsity_a"`
	SparsityB  float64 `yaml:"sparsity_b"`
	Component  int     `yaml:"component"`
	Threshold  float64 `yaml:"threshold"`
}

// Config is the root configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Inputs    InputConfig     `yaml:"inputs"`
	Synthetic SyntheticConfig `yaml:"synthetic"`
	Params    ParamsConfig    `yaml:"params"`
}

// Load reads a config from path. If the file does not exist, returns defaults.
// The file is decoded over Default(), so keys it omits keep their default and
// keys it sets, zero included, win.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// Save writes the config to path, creating directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns the demo configuration: 60 samples, 800×150 features,
// 20 linked, and pipeline.DefaultParams.
func Default() *Config {
	p := pipeline.DefaultParams()
	return &Config{
		Log: LogConfig{Level: "info"},
		Synthetic: SyntheticConfig{
			Samples:   60,
			FeaturesA: 800,
			FeaturesB: 150,
			Linked:    20,
			Seed:      42,
		},
		Params: ParamsConfig{
			Components: p.Components,
			SparsityA:  p.SparsityA,
			SparsityB:  p.SparsityB,
			Component:  p.Component,
			Threshold:  p.Threshold,
		},
	}
}

// applyDefaults restores values that are never meaningful when empty.
func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = Default().Log.Level
	}
}

// ApplyEnv overrides the log level and seed from the environment.
// lookup is os.LookupEnv outside tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvSeed, v, ErrInvalid)
		}
		c.Synthetic.Seed = seed
	}
	return nil
}

// Validate checks ranges the pipeline would otherwise reject later.
func (c *Config) Validate() error {
	if (c.Inputs.A == "") != (c.Inputs.B == "") {
		return fmt.Errorf("config: inputs need both a and b: %w", ErrInvalid)
	}
	if c.Inputs.A == "" {
		s := c.Synthetic
		if s.Samples < 2 || s.FeaturesA < 1 || s.FeaturesB < 1 || s.Linked < 0 {
			return fmt.Errorf("config: synthetic size %+v: %w", s, ErrInvalid)
		}
	}
	p := c.Params
	switch {
	case p.Components < 1:
		return fmt.Errorf("config: components=%d: %w", p.Components, ErrInvalid)
	case p.Component < 1 || p.Component > p.Components:
		return fmt.Errorf("config: component=%d of %d: %w", p.Component, p.Components, ErrInvalid)
	case !spls.ValidSparsity(p.SparsityA) || !spls.ValidSparsity(p.SparsityB):
		return fmt.Errorf("config: sparsity %v/%v: %w", p.SparsityA, p.SparsityB, ErrInvalid)
	case !(p.Threshold >= 0) || math.IsInf(p.Threshold, 1):
		return fmt.Errorf("config: threshold=%v: %w", p.Threshold, ErrInvalid)
	}
	return nil
}

// PipelineParams converts the params section.
func (c *Config) PipelineParams() pipeline.Params {
	return pipeline.Params{
		Components: c.Params.Components,
		SparsityA:  c.Params.SparsityA,
		SparsityB:  c.Params.SparsityB,
		Component:  c.Params.Component,
		Threshold:  c.Params.Threshold,
	}
}
