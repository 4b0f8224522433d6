package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level moneta.yaml configuration.
type Config struct {
	Profile ProfileConfig `yaml:"profile"`
	Import  ImportConfig  `yaml:"import"`
}

// ProfileConfig identifies the person the ledger belongs to.
type ProfileConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // default currency for new accounts
}

// ImportConfig controls how statement imports are categorized when the
// caller gives no category.
type ImportConfig struct {
	DefaultCategory    string `yaml:"default_category"`
	DefaultSubcategory string `yaml:"default_subcategory"`
}

// Load reads a moneta.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data dir.
func Default(profileName string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name:     profileName,
			Currency: "USD",
		},
		Import: ImportConfig{
			DefaultCategory:    "discretionary",
			DefaultSubcategory: "entertainment",
		},
	}
}
