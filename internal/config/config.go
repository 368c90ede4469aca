// Package config holds presentation and recording settings. Physics
// constants are fixed at build time and deliberately not configurable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS      = 60
	DefaultTheme    = "induction"
	DefaultDataDir  = ".faraday"
	DefaultDuration = 10.0
)

type Config struct {
	FPS      int     `yaml:"fps"`
	Theme    string  `yaml:"theme"`
	DataDir  string  `yaml:"data_dir"`
	Seed     int64   `yaml:"seed"`
	Duration float64 `yaml:"duration"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:      DefaultFPS,
		Theme:    DefaultTheme,
		DataDir:  DefaultDataDir,
		Duration: DefaultDuration,
	}
}

// Load reads a yaml config, filling unset fields from defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("fps must be in [1,240], got %d", c.FPS)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", c.Duration)
	}
	return nil
}
