package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/snake.yaml"

// LoadSnake loads the Snake configuration and reports which file it came from.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// The returned path is empty when the embedded default was used.
// Files may be partial; missing keys keep their default values.
func LoadSnake(customPath string) (SnakeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := ParseFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if cfg, err := ParseFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	if cfg, err := ParseFile(localConfigPath); err == nil {
		return cfg, localConfigPath, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// ParseFile reads and validates a config file.
func ParseFile(path string) (SnakeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
