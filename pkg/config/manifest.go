package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultManifestName is the manifest file looked up in the working
// directory when no explicit path is given.
const DefaultManifestName = "protopojo.yaml"

// LoadManifest reads a YAML manifest. Keys absent from the file keep
// their default values.
func LoadManifest(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return cfg, nil
}

// SaveManifest writes cfg as a YAML manifest.
func SaveManifest(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
