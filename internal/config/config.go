// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Document sources (file path or http(s) URL)
	Resume   string `json:"resume,omitempty"`   // Resume dataset document
	Profiles string `json:"profiles,omitempty"` // Profile set document

	// Output
	Format string `json:"format,omitempty"` // "compact" or "executive"
	Output string `json:"output,omitempty"` // Output file path

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed selection information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Format != "" && c.Format != "compact" && c.Format != "executive" {
		return fmt.Errorf("config error: 'format' must be \"compact\" or \"executive\", got %q", c.Format)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}

	// Validate local document paths exist (URLs are checked at load time)
	for _, source := range []string{c.Resume, c.Profiles} {
		if source == "" || strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
			continue
		}
		if _, err := os.Stat(source); os.IsNotExist(err) {
			return fmt.Errorf("config error: document file not found: %s", source)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Profiles == "" {
		result.Profiles = defaults.Profiles
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
