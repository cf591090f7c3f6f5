package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration loaded from YAML.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Engine    EngineConfig    `yaml:"engine"`
	Generator GeneratorConfig `yaml:"generator"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// Duration wraps time.Duration so YAML values like "100ms" parse with
// time.ParseDuration semantics.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped standard-library duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// EngineConfig configures the batch scheduler and statistics store.
type EngineConfig struct {
	TickInterval      Duration `yaml:"tick_interval"`
	FlushThreshold    int      `yaml:"flush_threshold"`
	RateMin           int      `yaml:"rate_min"`
	RateMax           int      `yaml:"rate_max"`
	DefaultRate       int      `yaml:"default_rate"`
	HistoryCapacity   int      `yaml:"history_capacity"`
	SortedWindowSize  int      `yaml:"sorted_window_size"`
	EncodedSampleSize int      `yaml:"encoded_sample_size"`
}

// GeneratorConfig configures the synthetic transaction generator.
type GeneratorConfig struct {
	Symbols  []string `yaml:"symbols"`
	PriceMin float64  `yaml:"price_min"`
	PriceMax float64  `yaml:"price_max"`
}

// Load reads a YAML config file, substitutes ${ENV_VAR} references,
// applies defaults for unset fields and validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(raw))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Default returns the compiled-in configuration used when no config file
// is supplied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
