// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/dotandev/bricks/internal/errors"
)

// Config represents the general configuration for bricks
type Config struct {
	DatabasePath string `json:"database_path,omitempty"`
	LogLevel     string `json:"log_level,omitempty"`
	// NoUpdateCheck disables the background check for new releases.
	// Set via no_update_check = true in config or BRICKS_NO_UPDATE_CHECK=1.
	NoUpdateCheck bool `json:"no_update_check,omitempty"`
}

// DefaultConfig returns the built-in defaults. The database lives
// next to the config file under ~/.bricks.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		DatabasePath: filepath.Join(home, ".bricks", "catalog.db"),
		LogLevel:     "info",
	}
}

// GetConfigPath returns the bricks configuration directory, creating it
// if necessary.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapConfigError("failed to resolve home directory", err)
	}
	dir := filepath.Join(home, ".bricks")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.WrapConfigError("failed to create config directory", err)
	}
	return dir, nil
}

// GetGeneralConfigPath returns the path to the general configuration file
func GetGeneralConfigPath() (string, error) {
	configDir, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the general configuration from disk (JSON format),
// then applies BRICKS_* environment overrides.
func LoadConfig() (*Config, error) {
	configPath, err := GetGeneralConfigPath()
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()

	// If file doesn't exist, fall through to env overrides on defaults
	if _, statErr := os.Stat(configPath); statErr == nil {
		data, readErr := os.ReadFile(configPath)
		if readErr != nil {
			return nil, errors.WrapConfigError("failed to read config file", readErr)
		}
		if err := json.Unmarshal(data, config); err != nil {
			return nil, errors.WrapConfigError("failed to parse config file", err)
		}
	}

	config.applyEnv()
	return config, nil
}

// SaveConfig writes the configuration to disk in JSON format
func SaveConfig(config *Config) error {
	configPath, err := GetGeneralConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return errors.WrapConfigError("failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.WrapConfigError("failed to write config file", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BRICKS_DATABASE_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("BRICKS_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	switch os.Getenv("BRICKS_NO_UPDATE_CHECK") {
	case "1", "true", "yes":
		c.NoUpdateCheck = true
	}
}
