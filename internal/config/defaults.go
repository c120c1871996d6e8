package config

import (
	_ "embed"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// DefaultLevels returns the built-in ten level campaign.
func DefaultLevels() LevelSet {
	level := func(blocks, static, common, super, eggs, hatchMs, distance, secs, completion int) LevelConfig {
		return LevelConfig{
			Blocks:                blocks,
			StaticBlocks:          static,
			CommonBeasts:          common,
			SuperBeasts:           super,
			Eggs:                  eggs,
			EggHatchingMs:         hatchMs,
			BeastStartingDistance: distance,
			TimeSecs:              secs,
			CompletionScore:       completion,
		}
	}

	return LevelSet{
		Lives: 5,
		Levels: []LevelConfig{
			level(300, 10, 3, 0, 0, 20000, 16, 120, 5),
			level(250, 12, 5, 0, 0, 20000, 42, 120, 7),
			level(200, 20, 12, 0, 0, 20000, 27, 240, 7),
			level(180, 30, 10, 1, 0, 20000, 27, 240, 10),
			level(170, 30, 10, 3, 0, 20000, 27, 240, 12),
			level(160, 30, 10, 7, 0, 20000, 27, 300, 15),
			level(160, 50, 5, 1, 1, 20000, 27, 300, 20),
			level(160, 100, 10, 5, 3, 20000, 27, 330, 25),
			level(150, 150, 10, 5, 5, 17000, 27, 330, 30),
			level(180, 150, 10, 10, 8, 10000, 27, 360, 100),
		},
	}
}

// DefaultYAML returns the embedded default level file.
func DefaultYAML() []byte {
	return defaultLevelsYAML
}
