// Package config loads runner configuration for the console front-end
// from a .tested.yaml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the console runner's settings. Command-line flags overlay
// these values.
type Config struct {
	// Theme names the reporter theme: "default" or "mono".
	Theme string `yaml:"theme"`
	// NoColor forces the mono theme regardless of Theme.
	NoColor bool `yaml:"no_color"`
	// Live enables the interactive progress view on a TTY.
	Live bool `yaml:"live"`
	// Run is the default selection address used when no selection flag is
	// given, e.g. "math" or "std.vector:#2". Empty means run everything.
	Run string `yaml:"run,omitempty"`
}

const configFileName = ".tested.yaml"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{Theme: "default"}
}

// Load reads the first .tested.yaml found by findConfigPath, overlaying it
// on the defaults. A missing or unreadable file silently yields defaults;
// the runner must work out of the box.
func Load() *Config {
	cfg := Default()
	path := findConfigPath()
	if path == "" {
		return cfg
	}
	loaded, err := LoadFile(path)
	if err != nil {
		return cfg
	}
	return loaded
}

// LoadFile reads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// findConfigPath looks for .tested.yaml in the working directory, then in
// the user config directory under "tested/".
func findConfigPath() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}
	userDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(userDir, "tested", configFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
