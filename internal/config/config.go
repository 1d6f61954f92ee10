// Package config provides configuration management for ctfmt.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the ctfmt configuration.
type Config struct {
	Extensions   []string `yaml:"extensions,omitempty" json:"extensions,omitempty"`
	Exclude      []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
	Jobs         int      `yaml:"jobs,omitempty" json:"jobs,omitempty"`
	OutputFormat string   `yaml:"output_format,omitempty" json:"output_format,omitempty"`
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("extension %q must start with '.'", ext)
		}
	}
	if c.Jobs < 0 {
		return errors.New("jobs must not be negative")
	}
	return nil
}

// Normalize trims whitespace around list entries, drops empty ones and adds
// a leading '.' to bare extensions.
func (c *Config) Normalize() {
	c.Extensions = cleanList(c.Extensions)
	for i, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			c.Extensions[i] = "." + ext
		}
	}
	c.Exclude = cleanList(c.Exclude)
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() error {
	if exts := os.Getenv("CTFMT_EXTENSIONS"); exts != "" {
		c.Extensions = SplitList(exts)
	}
	if exclude := os.Getenv("CTFMT_EXCLUDE"); exclude != "" {
		c.Exclude = SplitList(exclude)
	}
	if jobs := os.Getenv("CTFMT_JOBS"); jobs != "" {
		n, err := strconv.Atoi(jobs)
		if err != nil {
			return fmt.Errorf("invalid CTFMT_JOBS %q: %w", jobs, err)
		}
		c.Jobs = n
	}
	if format := os.Getenv("CTFMT_OUTPUT"); format != "" {
		c.OutputFormat = format
	}
	return nil
}

// SplitList splits a comma-separated list, dropping empty entries.
func SplitList(s string) []string {
	return cleanList(strings.Split(s, ","))
}

func cleanList(in []string) []string {
	var out []string
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "ctfmt", "config.yml")
	}

	// Fall back to ~/.config/ctfmt/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".ctfmt", "config.yml")
	}

	return filepath.Join(home, ".config", "ctfmt", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
// A missing file is not an error; a malformed one is.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}
