// Package config loads run defaults from an optional .filenorm.yaml file.
// Explicitly set CLI flags override anything loaded here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory when
// no --config flag is given.
const DefaultFileName = ".filenorm.yaml"

// Config holds the run options that can be set from a config file.
type Config struct {
	// Recursive processes directories recursively.
	Recursive bool `yaml:"recursive"`

	// DryRun reports intended renames without performing them.
	DryRun bool `yaml:"dry_run"`

	// AddDate prefixes files with their creation date.
	AddDate bool `yaml:"add_date"`

	// DateFormat is one of "full", "year-month" or "year".
	DateFormat string `yaml:"date_format"`

	// Extensions restricts processing to these file extensions.
	Extensions []string `yaml:"extensions"`

	// Dirs also normalizes directory names.
	Dirs bool `yaml:"dirs"`

	// ExcludeDirs lists directory names never descended into.
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// NoColor disables colored output.
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns a Config with the tool's default values.
func DefaultConfig() *Config {
	return &Config{
		DateFormat: "full",
	}
}

// Load reads configuration from path. A missing file is not an error and
// yields the defaults; an unreadable or malformed file is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DateFormat {
	case "", "full", "year-month", "year":
		return nil
	default:
		return fmt.Errorf("invalid date_format %q (want full, year-month, or year)", c.DateFormat)
	}
}
