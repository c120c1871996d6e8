package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset accepts a preset name; the empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// ApplyPreset returns a copy of the set adjusted for the preset.
// Easy grants two extra lives and half again as much time per level.
// Hard takes two lives away (never below one), cuts level time by a quarter
// and makes eggs hatch a quarter sooner.
func ApplyPreset(set LevelSet, preset DifficultyPreset) LevelSet {
	out := set.Clone()

	switch preset {
	case DifficultyEasy:
		out.Lives += 2
		for i := range out.Levels {
			out.Levels[i].TimeSecs = out.Levels[i].TimeSecs * 3 / 2
		}
	case DifficultyHard:
		out.Lives = max(out.Lives-2, 1)
		for i := range out.Levels {
			out.Levels[i].TimeSecs = max(out.Levels[i].TimeSecs*3/4, 1)
			out.Levels[i].EggHatchingMs = out.Levels[i].EggHatchingMs * 3 / 4
		}
	}

	return out
}
