// Package config loads the h3grid CLI's YAML configuration, following the
// load-with-defaults shape the ambient server config uses.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the h3cli driver's defaults.
type Config struct {
	Default DefaultConfig `yaml:"default"`
	Output  OutputConfig  `yaml:"output"`
	Kring   KringConfig   `yaml:"kring"`
	Earth   EarthConfig   `yaml:"earth"`
}

// DefaultConfig holds the resolution used when a command omits -res.
type DefaultConfig struct {
	Resolution int `yaml:"resolution"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format    string `yaml:"format"` // "text" or "json"
	Precision int    `yaml:"precision"`
}

// KringConfig holds defaults for the kRing/hexRange commands.
type KringConfig struct {
	MaxRadius int `yaml:"max_radius"`
}

// EarthConfig holds the mean radius used for area/length conversions.
type EarthConfig struct {
	RadiusKm float64 `yaml:"radius_km"`
}

// Load reads configuration from a YAML file, filling in defaults for any
// zero-valued field.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns a Config with no file loaded, defaults applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Default.Resolution == 0 {
		cfg.Default.Resolution = 9
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Output.Precision == 0 {
		cfg.Output.Precision = 6
	}
	if cfg.Kring.MaxRadius == 0 {
		cfg.Kring.MaxRadius = 50
	}
	if cfg.Earth.RadiusKm == 0 {
		cfg.Earth.RadiusKm = 6371.007180918475
	}
}
