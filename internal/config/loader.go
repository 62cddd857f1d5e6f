package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLaneDodger loads Lane Dodger configuration.
// Search order: customPath -> ~/.arcade/configs/lanedodger.yaml -> ./configs/lanedodger.yaml -> embedded default
//
// Files may be partial: keys they omit keep their default values.
// A custom path that cannot be read, parsed or validated is an error; broken
// files found in the other locations are skipped.
func LoadLaneDodger(customPath string) (LaneDodgerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LaneDodgerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseLaneDodger(data)
		if err != nil {
			return LaneDodgerConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("lanedodger.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseLaneDodger(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "lanedodger.yaml")); err == nil {
		if cfg, err := parseLaneDodger(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseLaneDodger(defaultLaneDodgerYAML)
	if err != nil {
		return DefaultLaneDodgerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseLaneDodger decodes YAML on top of the defaults and validates the result.
func parseLaneDodger(data []byte) (LaneDodgerConfig, error) {
	cfg := DefaultLaneDodgerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LaneDodgerConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return LaneDodgerConfig{}, fmt.Errorf("invalid: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
