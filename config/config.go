// Package config layers defaults, an optional YAML file and SIMON_* environment variables
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/simon/audio"
	"github.com/lixenwraith/simon/engine"
)

// EnvPrefix is prepended to every environment key
const EnvPrefix = "SIMON_"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration
type Config struct {
	Player string `yaml:"player" env:"PLAYER"`
	Seed   uint64 `yaml:"seed" env:"SEED"` // 0 seeds from the clock
	Debug  bool   `yaml:"debug" env:"DEBUG"`
	LogDir string `yaml:"log_dir" env:"LOG_DIR"`

	Timings engine.Timings    `yaml:"timings"`
	Audio   audio.AudioConfig `yaml:"audio"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LogDir:  "logs",
		Timings: engine.DefaultTimings(),
		Audio:   *audio.DefaultAudioConfig(),
	}
}

// Load reads path (optional) then the process environment
func Load(path string) (*Config, error) {
	return LoadWith(path, nil)
}

// LoadWith is Load with an explicit environment, nil reads the process environment
func LoadWith(path string, environ map[string]string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks timings and audio settings
func (c *Config) Validate() error {
	if err := c.Timings.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.Audio.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Debug && c.LogDir == "" {
		return fmt.Errorf("%w: debug logging needs a log_dir", ErrInvalid)
	}
	return nil
}
