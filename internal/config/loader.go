package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LevelsFile is the file name looked up in the config directories.
const LevelsFile = "levels.yaml"

// LoadLevels loads the level set.
// Search order: customPath -> ~/.beast/configs/levels.yaml -> ./configs/levels.yaml -> embedded default
func LoadLevels(customPath string) (LevelSet, error) {
	var set LevelSet

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return set, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &set); err != nil {
			return set, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := set.Validate(); err != nil {
			return set, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return set, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(LevelsFile); userCfgPath != "" {
		if set, ok := readLevels(userCfgPath); ok {
			return set, nil
		}
	}

	// Try local configs directory
	if set, ok := readLevels(filepath.Join("configs", LevelsFile)); ok {
		return set, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultLevelsYAML, &set); err != nil || set.Validate() != nil {
		return DefaultLevels(), nil // Fallback to hardcoded if embed fails
	}
	return set, nil
}

// readLevels reads an optional config file. Unreadable or invalid files are
// skipped so the next location in the search order is tried.
func readLevels(path string) (LevelSet, bool) {
	var set LevelSet
	data, err := os.ReadFile(path)
	if err != nil {
		return set, false
	}
	if err := yaml.Unmarshal(data, &set); err != nil {
		return set, false
	}
	if set.Validate() != nil {
		return set, false
	}
	return set, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".beast", "configs", filename)
}

// ErrNoLevels is returned by Validate for an empty campaign.
var ErrNoLevels = errors.New("config: no levels defined")

// Validate checks that every level can be generated and played.
func (s LevelSet) Validate() error {
	if len(s.Levels) == 0 {
		return ErrNoLevels
	}
	if s.Lives < 1 {
		return fmt.Errorf("config: lives must be at least 1, got %d", s.Lives)
	}
	for i, lvl := range s.Levels {
		if err := lvl.Validate(); err != nil {
			return fmt.Errorf("config: level %d: %w", i+1, err)
		}
	}
	return nil
}

// Validate checks a single level.
func (c LevelConfig) Validate() error {
	if c.TimeSecs <= 0 {
		return fmt.Errorf("time_secs must be positive, got %d", c.TimeSecs)
	}
	if c.Eggs > 0 && c.EggHatchingMs <= 0 {
		return fmt.Errorf("egg_hatching_time_ms must be positive when eggs are placed")
	}
	if c.Beasts() == 0 {
		return fmt.Errorf("level has no beasts to squish")
	}
	return c.Layout().Fits()
}
