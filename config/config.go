// SPDX-License-Identifier: MIT

// Package config loads chartpath settings from a YAML file.
//
// Every field has a default, so a missing file or an empty document yields a
// usable Config. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/chartpath/chart"
	"github.com/katalvlaran/chartpath/spanning"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded value cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Defaults.
const (
	DefaultListen   = ":8080"
	DefaultLogLevel = "info"
)

// Config holds all chartpath settings.
type Config struct {
	// Chart is the path of the chart feed (text, or YAML by extension).
	Chart string `yaml:"chart"`

	// PickRadius is the distance within which a point selects a position.
	PickRadius float64 `yaml:"pick_radius"`

	// Strategy names the spanning-forest lookup: "scan" or "dsu".
	Strategy string `yaml:"strategy"`

	// LogLevel is any level understood by logrus.ParseLevel.
	LogLevel string `yaml:"log_level"`

	// Listen is the HTTP listen address for serve.
	Listen string `yaml:"listen"`
}

// Default returns a Config with every field set to its default.
func Default() *Config {
	return &Config{
		PickRadius: chart.DefaultPickRadius,
		Strategy:   spanning.StrategyScan.String(),
		LogLevel:   DefaultLogLevel,
		Listen:     DefaultListen,
	}
}

// Load reads the YAML file at path. An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in missing values.
func (c *Config) applyDefaults() {
	d := Default()
	if c.PickRadius == 0 {
		c.PickRadius = d.PickRadius
	}
	if c.Strategy == "" {
		c.Strategy = d.Strategy
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Listen == "" {
		c.Listen = d.Listen
	}
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	if c.PickRadius < 0 {
		return fmt.Errorf("%w: pick_radius %g is negative", ErrInvalid, c.PickRadius)
	}
	if _, err := spanning.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}

// SpanningStrategy returns the parsed forest strategy, falling back to scan.
func (c *Config) SpanningStrategy() spanning.Strategy {
	s, err := spanning.ParseStrategy(c.Strategy)
	if err != nil {
		return spanning.StrategyScan
	}

	return s
}
