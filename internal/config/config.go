// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pdf-harvest/internal/paths"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		OutputDir  string `yaml:"output_dir"`
		TextFile   string `yaml:"text_file"`
		TablesDir  string `yaml:"tables_dir"`
		ImagesDir  string `yaml:"images_dir"`
		Xlsx       string `yaml:"xlsx"`
		ImageMode  string `yaml:"image_mode"`
		SaveImages bool   `yaml:"save_images"`
		MaxPages   int    `yaml:"max_pages"`
		NoColor    bool   `yaml:"no_color"`
		Debug      bool   `yaml:"debug"`
	} `yaml:"defaults"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{}
	config.Defaults.OutputDir = "."
	config.Defaults.ImagesDir = "extracted_images"
	config.Defaults.ImageMode = "full"
	config.Defaults.SaveImages = true
	config.Defaults.NoColor = false
	config.Defaults.Debug = false

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	// Read config file
	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Store default values before unmarshaling
	defaultSaveImages := config.Defaults.SaveImages

	// Parse YAML
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Restore defaults if not explicitly set in config file.
	// This handles the case where YAML unmarshaling sets bool fields to false
	// when they're not present in the config file.
	if !containsField(data, "defaults", "save_images") {
		config.Defaults.SaveImages = defaultSaveImages
	}

	// Validate the configuration
	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfig checks configuration values that have a closed set of
// accepted inputs.
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	switch config.Defaults.ImageMode {
	case "", "full", "light":
	default:
		return fmt.Errorf("invalid image_mode %q (must be 'full' or 'light')", config.Defaults.ImageMode)
	}

	if config.Defaults.MaxPages < 0 {
		return fmt.Errorf("max_pages cannot be negative")
	}

	for _, p := range []string{
		config.Defaults.OutputDir,
		config.Defaults.TextFile,
		config.Defaults.TablesDir,
		config.Defaults.ImagesDir,
		config.Defaults.Xlsx,
	} {
		if err := paths.ValidatePath(p); err != nil {
			return fmt.Errorf("path validation failed: %w", err)
		}
	}

	return nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	if fileExists("config.yaml") {
		return "config.yaml"
	}
	if fileExists("pdf-harvest.yaml") {
		return "pdf-harvest.yaml"
	}
	if fileExists("pdf-harvest.yml") {
		return "pdf-harvest.yml"
	}

	// Check for .pdf-harvest.yaml in current directory (project-specific config)
	if fileExists(".pdf-harvest.yaml") {
		return ".pdf-harvest.yaml"
	}
	if fileExists(".pdf-harvest.yml") {
		return ".pdf-harvest.yml"
	}

	// Check standard location using platform-aware paths
	standardConfig := paths.GetConfigFile()
	if standardConfig != "" && fileExists(standardConfig) {
		return standardConfig
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// Check legacy locations in home directory
	homeConfig := filepath.Join(home, ".pdf-harvest.yaml")
	if fileExists(homeConfig) {
		return homeConfig
	}
	homeConfig = filepath.Join(home, ".pdf-harvest.yml")
	if fileExists(homeConfig) {
		return homeConfig
	}

	// Check XDG config directory
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	xdgConfigFile := filepath.Join(xdgConfig, "pdf-harvest", "config.yaml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}
	xdgConfigFile = filepath.Join(xdgConfig, "pdf-harvest", "config.yml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

// containsField checks if a nested field exists in the YAML data
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	err := yaml.Unmarshal(data, &yamlData)
	if err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			// Last key - check if it exists
			_, exists := current[key]
			return exists
		}
		// Intermediate key - navigate deeper
		if next, ok := current[key].(map[string]interface{}); ok {
			current = next
		} else {
			return false
		}
	}
	return false
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns a default configuration.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Fall back to defaults — callers should not crash on a missing/bad config file.
		cfg, _ = LoadConfig("")
	}
	return cfg
}
