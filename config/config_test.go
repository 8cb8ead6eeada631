package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/carbocation/gsea/enrichment"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Permutations != 1000 {
		t.Errorf("expected Permutations=1000, got %d", cfg.Permutations)
	}
	if cfg.Layout != "RNK" {
		t.Errorf("expected Layout=RNK, got %s", cfg.Layout)
	}
	if cfg.Alpha != 0.25 {
		t.Errorf("expected Alpha=0.25, got %f", cfg.Alpha)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/gsea.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected default config, got nil")
	}
	if cfg.Permutations != 1000 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFile_NonExistent(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "typo.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist for a missing file, got %v", err)
	}
	if cfg != nil {
		t.Errorf("expected no config, got %+v", cfg)
	}
}

func TestLoadFile_ValidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "gsea.yaml")
	if err := os.WriteFile(configPath, []byte("permutations: 42\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Permutations != 42 || cfg.Layout != "RNK" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gsea.yaml")

	content := `
permutations: 250
seed: 99
weight: 1
max_size: 500
layout: SIGNEDP
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Permutations != 250 || cfg.Seed != 99 || cfg.Weight != 1 || cfg.MaxSize != 500 || cfg.Layout != "SIGNEDP" {
		t.Errorf("unexpected config: %+v", cfg)
	}

	// Unset keys keep their defaults.
	if cfg.MinSize != 1 || cfg.Alpha != 0.25 {
		t.Errorf("defaults were lost: %+v", cfg)
	}

	opts := cfg.Options()
	if opts.Permutations != 250 || opts.Seed != 99 || opts.MaxSize != 500 {
		t.Errorf("unexpected options: %+v", opts)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "gsea.yaml")
	if err := os.WriteFile(configPath, []byte("permutations: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	for _, mutate := range []func(*Config){
		func(c *Config) { c.Permutations = 0 },
		func(c *Config) { c.Alpha = 0 },
		func(c *Config) { c.Alpha = 1.5 },
		func(c *Config) { c.Layout = "NOPE" },
	} {
		cfg := DefaultConfig()
		mutate(cfg)

		var invalid *enrichment.InvalidParameterError
		if err := cfg.Validate(); !errors.As(err, &invalid) {
			t.Errorf("expected InvalidParameterError for %+v, got %v", cfg, err)
		}
	}
}
