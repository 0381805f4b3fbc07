// Package config handles CLI configuration loading.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "IMAGEGEN_CONFIG"

// Config represents the CLI configuration.
// API keys are never read from here; they come from the environment only.
type Config struct {
	DefaultModel string `yaml:"default_model,omitempty"`
	BaseURL      string `yaml:"base_url,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat    string `yaml:"log_format,omitempty"` // text, json
}

// DefaultConfigPath returns the configuration file path:
// $IMAGEGEN_CONFIG if set, otherwise ~/.imagegen/config.yaml
// (%USERPROFILE%\.imagegen\config.yaml on Windows).
func DefaultConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}

	var homeDir string
	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		return "config.yaml"
	}

	return filepath.Join(homeDir, ".imagegen", "config.yaml")
}

// LoadConfig loads configuration from path.
// A missing file yields an empty config. Unknown keys are rejected so a
// misplaced api_key entry fails loudly instead of being ignored.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
