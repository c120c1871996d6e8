// Package config provides YAML-based level configuration loading and
// difficulty presets for the beast game.
package config

import (
	"time"

	"github.com/vovakirdan/beast-arcade/internal/games/beast/board"
)

// LevelSet is the full campaign: starting lives plus the ordered levels.
type LevelSet struct {
	Lives  int           `yaml:"lives"`
	Levels []LevelConfig `yaml:"levels"`
}

// LevelConfig describes one level of the campaign.
type LevelConfig struct {
	Blocks                int `yaml:"blocks"`
	StaticBlocks          int `yaml:"static_blocks"`
	CommonBeasts          int `yaml:"common_beasts"`
	SuperBeasts           int `yaml:"super_beasts"`
	Eggs                  int `yaml:"eggs"`
	EggHatchingMs         int `yaml:"egg_hatching_time_ms"`
	BeastStartingDistance int `yaml:"beast_starting_distance"`
	TimeSecs              int `yaml:"time_secs"`
	CompletionScore       int `yaml:"completion_score"`
}

// HatchTime is how long an egg incubates.
func (c LevelConfig) HatchTime() time.Duration {
	return time.Duration(c.EggHatchingMs) * time.Millisecond
}

// TimeLimit is how long the player has to clear the level.
func (c LevelConfig) TimeLimit() time.Duration {
	return time.Duration(c.TimeSecs) * time.Second
}

// Layout returns the counts terrain generation works from.
func (c LevelConfig) Layout() board.Layout {
	return board.Layout{
		Blocks:                c.Blocks,
		StaticBlocks:          c.StaticBlocks,
		CommonBeasts:          c.CommonBeasts,
		SuperBeasts:           c.SuperBeasts,
		Eggs:                  c.Eggs,
		BeastStartingDistance: c.BeastStartingDistance,
	}
}

// Beasts is the number of enemies and eggs the level starts with.
func (c LevelConfig) Beasts() int {
	return c.CommonBeasts + c.SuperBeasts + c.Eggs
}

// Level returns the 1-based level, or false when out of range.
func (s LevelSet) Level(n int) (LevelConfig, bool) {
	if n < 1 || n > len(s.Levels) {
		return LevelConfig{}, false
	}
	return s.Levels[n-1], true
}

// Clone returns a deep copy so presets can be applied without aliasing.
func (s LevelSet) Clone() LevelSet {
	out := LevelSet{Lives: s.Lives, Levels: make([]LevelConfig, len(s.Levels))}
	copy(out.Levels, s.Levels)
	return out
}
