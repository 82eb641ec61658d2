// Package config loads the optional CLI configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/craftledger/etsyprofit/internal/engine"
)

type Config struct {
	// Columns appends extra accepted header name variants per canonical
	// field, for shops whose exports carry renamed columns.
	Columns map[string][]string `yaml:"columns,omitempty"`

	// Currency overrides the display currency inferred from the export
	Currency string `yaml:"currency,omitempty"`

	// Source is the default source type when none is given on the command line
	Source string `yaml:"source,omitempty"`
}

// DefaultPath returns the default config file path (~/.etsyprofit/config.yaml)
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".etsyprofit", "config.yaml")
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	for field := range cfg.Columns {
		if !engine.IsColumnField(field) {
			return nil, fmt.Errorf("unknown column field %q (known: %v)", field, engine.ColumnFields())
		}
	}

	return &cfg, nil
}

// Save writes the config back to disk, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
