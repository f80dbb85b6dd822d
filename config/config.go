// Package config provides configuration loading and access for reward evaluation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is returned when a loaded config fails validation.
var ErrInvalid = errors.New("invalid config")

// Config holds all configuration parameters.
type Config struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Rewards   RewardsConfig   `yaml:"rewards"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ArenaConfig holds the simulation constants rewards normalize against.
type ArenaConfig struct {
	CarMaxSpeed  float64 `yaml:"car_max_speed"`  // Divisor for speed_toward_ball
	BallMaxSpeed float64 `yaml:"ball_max_speed"` // Divisor for velocity_ball_to_goal
	BackNetY     float64 `yaml:"back_net_y"`     // |Y| of each goal target
}

// RewardsConfig describes the weighted reward set.
type RewardsConfig struct {
	InAirScale float64            `yaml:"in_air_scale"`
	Terms      []RewardTermConfig `yaml:"terms"`
}

// RewardTermConfig is one weighted term of the combined reward.
type RewardTermConfig struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// TelemetryConfig holds replay output parameters.
type TelemetryConfig struct {
	LogEveryEpisode bool `yaml:"log_every_episode"` // slog a summary per agent at each episode end
	WriteTicks      bool `yaml:"write_ticks"`       // write per-tick rewards.csv
	PerfWindow      int  `yaml:"perf_window"`       // ticks averaged for step timing
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file; a terms list replaces the default list
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate rejects constants that would make rewards non-finite.
func (c *Config) validate() error {
	positive := []struct {
		key string
		v   float64
	}{
		{"arena.car_max_speed", c.Arena.CarMaxSpeed},
		{"arena.ball_max_speed", c.Arena.BallMaxSpeed},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s must be finite and positive, got %v", ErrInvalid, p.key, p.v)
		}
	}

	finite := []struct {
		key string
		v   float64
	}{
		{"arena.back_net_y", c.Arena.BackNetY},
		{"rewards.in_air_scale", c.Rewards.InAirScale},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalid, f.key, f.v)
		}
	}

	seen := make(map[string]bool, len(c.Rewards.Terms))
	for i, t := range c.Rewards.Terms {
		if t.Name == "" {
			return fmt.Errorf("%w: rewards.terms[%d] has no name", ErrInvalid, i)
		}
		// rewards.csv has one column per term name
		if seen[t.Name] {
			return fmt.Errorf("%w: rewards.terms[%d] repeats %q", ErrInvalid, i, t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
