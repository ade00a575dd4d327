package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults shared with the catalog protocol.
const (
	// DefaultPageSize is the number of rows fetched per query round trip.
	DefaultPageSize = 10
	// DefaultMaxConditions is the hard cap on predicate clauses per
	// request, shared with the catalog protocol.
	DefaultMaxConditions = 20
)

// Config represents the flat catq configuration.
type Config struct {
	Version       string `json:"version"`
	PageSize      int    `json:"page_size"`
	MaxConditions int    `json:"max_conditions"`
	DBPath        string `json:"db_path,omitempty"` // Empty means default ~/.catq/catalog.db
}

// Default returns a configuration with protocol defaults applied.
func Default() *Config {
	return &Config{
		Version:       "1",
		PageSize:      DefaultPageSize,
		MaxConditions: DefaultMaxConditions,
	}
}

// ConfigDir returns the catq configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".catq"), nil
}

// LoadConfig reads config.json from the catq configuration directory.
// A missing file yields the defaults rather than an error; a present but
// unparseable file is an error.
func LoadConfig() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.MaxConditions <= 0 {
		cfg.MaxConditions = DefaultMaxConditions
	}

	return cfg, nil
}

// SaveConfig writes config.json to the catq configuration directory.
func SaveConfig(cfg *Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
