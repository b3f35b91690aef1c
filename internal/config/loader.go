package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "virusdefense.yaml"

// LoadVirusDefense loads the game configuration.
// Search order: customPath -> ~/.virusdefense/configs/virusdefense.yaml ->
// ./configs/virusdefense.yaml -> embedded default -> hardcoded default.
// Only an unreadable or malformed customPath is reported as an error.
// Fields missing from a file keep their default values.
func LoadVirusDefense(customPath string) (VirusDefenseConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultVirusDefenseConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultVirusDefenseConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultVirusDefenseYAML)
	if err != nil {
		return DefaultVirusDefenseConfig(), nil
	}
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults and repairs invalid values.
func parse(data []byte) (VirusDefenseConfig, error) {
	cfg := DefaultVirusDefenseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Validate()
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if p := UserConfigPath(configFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", configFile))
}

// UserConfigPath returns the path to a file in the user config directory,
// or empty if the home directory is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".virusdefense", "configs", filename)
}

// DataDir returns ~/.virusdefense, or "." if the home directory is unavailable.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".virusdefense")
}
