package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir is the per-user data directory, relative to the home directory.
const Dir = ".chronoshift"

// LoadDrift loads drift configuration.
// Search order: customPath -> ~/.chronoshift/configs/drift.yaml -> ./configs/drift.yaml -> embedded default
func LoadDrift(customPath string) (DriftConfig, error) {
	return load("drift", customPath, defaultDriftYAML, DefaultDriftConfig, DriftConfig.Validate)
}

// LoadExplore loads explore configuration.
// Search order: customPath -> ~/.chronoshift/configs/explore.yaml -> ./configs/explore.yaml -> embedded default
func LoadExplore(customPath string) (ExploreConfig, error) {
	return load("explore", customPath, defaultExploreYAML, DefaultExploreConfig, ExploreConfig.Validate)
}

func load[T any](gameID, customPath string, embedded []byte, fallback func() T, validate func(T) error) (T, error) {
	// Try custom path first; failures here are reported, not skipped
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := validate(cfg); err != nil {
			return fallback(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	// Try user config directory, then local configs directory
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback()
		if err := yaml.Unmarshal(data, &cfg); err == nil && validate(cfg) == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || validate(cfg) != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "configs", filename)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// DefaultPath returns ~/.chronoshift/<name>.
func DefaultPath(name string) string {
	return "~/" + Dir + "/" + name
}
