package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a dodge variant.
// Search order: customPath -> ~/.arcade/configs/<game>.yaml -> ./configs/<game>.yaml -> embedded default
func Load(gameID, customPath string) (DodgeConfig, error) {
	cfg, _, err := LoadWithSource(gameID, customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports where the configuration came from.
func LoadWithSource(gameID, customPath string) (DodgeConfig, string, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(gameID, customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := loadFile(gameID, userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", filename)
	if cfg, err := loadFile(gameID, localPath); err == nil && cfg.Validate() == nil {
		return cfg, localPath, nil
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(gameID); data != nil {
		cfg := defaultConfig(gameID)
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, "embedded", nil
		}
	}

	// Fallback to hardcoded if embed fails
	return defaultConfig(gameID), "builtin", nil
}

// loadFile reads a YAML file over the variant's defaults, so missing keys
// keep their default values.
func loadFile(gameID, path string) (DodgeConfig, error) {
	cfg := defaultConfig(gameID)
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
