package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSettings loads run settings from a YAML file, applies defaults and
// validates the result.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var cfg Settings
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	cfg.ApplyDefaults()
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultSettings returns a Settings with every field at its default.
func DefaultSettings() *Settings {
	var cfg Settings
	cfg.ApplyDefaults()
	return &cfg
}
