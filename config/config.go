package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kaede-rail/railtopo/neighbor"
)

// Config holds every tunable constant the pipeline consults. Zero values
// are never used directly: Load always merges onto Default() (the values of
// neighbor.DefaultThresholds) so a partial YAML document cannot zero out an unset field (these
// constants reflect empirical tuning, a missing field should not silently
// become 0).
type Config struct {
	Neighbor NeighborConfig `yaml:"neighbor"`
}

// NeighborConfig mirrors neighbor.Thresholds in YAML-friendly form.
type NeighborConfig struct {
	TurnCos         *float64 `yaml:"turn_cos"`
	DirectionBucket *float64 `yaml:"direction_bucket"`
}

// Default returns the compiled-in defaults (turn_cos=0.33,
// direction_bucket=0.1).
func Default() Config {
	th := neighbor.DefaultThresholds()
	return Config{Neighbor: NeighborConfig{
		TurnCos:         &th.TurnCos,
		DirectionBucket: &th.DirectionBucket,
	}}
}

// Load reads a YAML config file at path, overlaying any present fields onto
// the compiled-in defaults. A missing file is not an error: Default() is
// returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Thresholds extracts the neighbor.Thresholds this config describes.
func (c Config) Thresholds() neighbor.Thresholds {
	return neighbor.Thresholds{
		TurnCos:         *c.Neighbor.TurnCos,
		DirectionBucket: *c.Neighbor.DirectionBucket,
	}
}
