// Package config loads run parameters for the gsea commands from an optional
// YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/carbocation/gsea/enrichment"
	"github.com/carbocation/gsea/ranking"
)

type Config struct {
	Permutations int     `yaml:"permutations"`
	Seed         int64   `yaml:"seed"`
	Workers      int     `yaml:"workers"`
	Weight       float64 `yaml:"weight"`
	MinSize      int     `yaml:"min_size"`
	MaxSize      int     `yaml:"max_size"`

	// Layout is one of the ranking layouts (RNK, SIGNEDP).
	Layout string `yaml:"layout"`

	// Alpha is the q-value threshold used when summarizing a run.
	Alpha float64 `yaml:"alpha"`
}

// DefaultConfig returns the default configuration: 1000 permutations, the
// unweighted statistic, no size filter beyond a non-empty intersection.
func DefaultConfig() *Config {
	return &Config{
		Permutations: 1000,
		Seed:         1,
		Workers:      0,
		Weight:       0,
		MinSize:      1,
		MaxSize:      0,
		Layout:       "RNK",
		Alpha:        0.25,
	}
}

// Load reads a YAML file over the defaults. A missing file is not an error:
// the defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	return cfg, err
}

// LoadFile is Load for a path the user asked for explicitly: the file must
// exist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Options converts the configuration into scoring options.
func (c *Config) Options() enrichment.Options {
	return enrichment.Options{
		Permutations: c.Permutations,
		Seed:         c.Seed,
		Workers:      c.Workers,
		Weight:       c.Weight,
		MinSize:      c.MinSize,
		MaxSize:      c.MaxSize,
	}
}

func (c *Config) Validate() error {
	if c.Permutations < 1 {
		return &enrichment.InvalidParameterError{Parameter: "permutations", Value: c.Permutations, Reason: "must be a positive integer"}
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		return &enrichment.InvalidParameterError{Parameter: "alpha", Value: c.Alpha, Reason: "must be within (0, 1]"}
	}
	if _, exists := ranking.Layouts[c.Layout]; !exists {
		return &enrichment.InvalidParameterError{Parameter: "layout", Value: c.Layout, Reason: "valid layouts are " + ranking.LayoutNames()}
	}

	return nil
}
