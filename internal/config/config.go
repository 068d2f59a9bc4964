// Package config loads and persists the journal's settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable settings. Zero fields fall back to
// defaults at load time so a partial file stays valid.
type Config struct {
	// DataDir is where the record database lives.
	DataDir string `yaml:"data_dir"`
	// DefaultCycle is the cycle opened when none is passed on the command
	// line.
	DefaultCycle string `yaml:"default_cycle"`
	// ItemsPerPage sets the history page size.
	ItemsPerPage int `yaml:"items_per_page"`
	// Theme selects the terminal color theme.
	Theme string `yaml:"theme"`
	// TaxonomyPath optionally overrides the built-in cycle definitions
	// with a YAML file.
	TaxonomyPath string `yaml:"taxonomy_path,omitempty"`
}

// Dir returns the settings directory, ~/.vitalog.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home dir: %w", err)
	}
	return filepath.Join(home, ".vitalog"), nil
}

// DefaultPath returns the settings file location, ~/.vitalog/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DefaultCycle: "biologico",
		ItemsPerPage: 10,
		Theme:        "dark",
	}
}

// Load reads the settings file at path, filling unset fields with
// defaults. A missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.DefaultCycle == "" {
		cfg.DefaultCycle = "biologico"
	}
	if cfg.ItemsPerPage < 1 {
		cfg.ItemsPerPage = 10
	}
	if cfg.Theme == "" {
		cfg.Theme = "dark"
	}
	return cfg, nil
}

// Save writes the settings to path, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
