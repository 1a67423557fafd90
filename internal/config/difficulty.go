package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty.
type DifficultyPreset string

const (
	DifficultyEasy DifficultyPreset = "easy"
	DifficultyHard DifficultyPreset = "hard"
)

// Presets lists the accepted presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyHard}

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy or hard)", s)
	}
}

// LevelForPreset returns the starting level for a preset.
// Level 1 uses the easy tier, every later level the hard tier.
func LevelForPreset(preset DifficultyPreset) int {
	if preset == DifficultyHard {
		return 2
	}
	return 1
}

// TierName returns the tier name used for a level.
func TierName(level int) string {
	if level <= 1 {
		return string(DifficultyEasy)
	}
	return string(DifficultyHard)
}
