// Package config provides YAML-based configuration loading and difficulty
// presets for the tile match game.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// TileMatchConfig contains all configuration for the tile match game.
type TileMatchConfig struct {
	Tray         TrayConfig         `yaml:"tray"`
	Tools        ToolsConfig        `yaml:"tools"`
	Layout       LayoutConfig       `yaml:"layout"`
	Tiers        TiersConfig        `yaml:"tiers"`
	Presentation PresentationConfig `yaml:"presentation"`
}

// TrayConfig defines the slot tray.
type TrayConfig struct {
	Capacity int `yaml:"capacity"`
}

// ToolsConfig defines per-run use limits for each tool.
type ToolsConfig struct {
	Undo    int `yaml:"undo"`
	Shuffle int `yaml:"shuffle"`
	Hint    int `yaml:"hint"`
	Restart int `yaml:"restart"`
}

// LayoutConfig defines board geometry in layout units.
type LayoutConfig struct {
	TileWidth         float64 `yaml:"tile_width"`
	TileHeight        float64 `yaml:"tile_height"`
	GapX              float64 `yaml:"gap_x"`
	GapY              float64 `yaml:"gap_y"`
	Jitter            float64 `yaml:"jitter"`
	PlacementAttempts int     `yaml:"placement_attempts"`
}

// TiersConfig holds the two difficulty tiers.
type TiersConfig struct {
	Easy TierConfig `yaml:"easy"` // level 1
	Hard TierConfig `yaml:"hard"` // level 2 and up
}

// TierConfig defines the size of generated boards for a tier.
type TierConfig struct {
	Types    int `yaml:"types"`
	Triplets int `yaml:"triplets"`
	Layers   int `yaml:"layers"`
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
}

// PresentationConfig defines UI timing and scoring. None of it affects
// engine state.
type PresentationConfig struct {
	CheckTicks    int    `yaml:"check_ticks"`     // match check flash after a pick
	HintTicks     int    `yaml:"hint_ticks"`      // how long a hint stays highlighted
	PointsPerTile int    `yaml:"points_per_tile"` // score per matched tile
	Theme         string `yaml:"theme"`           // terminal color theme
}

// Themes lists the terminal color themes by name.
var Themes = []string{"default", "pastel", "mono"}

// Validate checks values the engine does not validate itself.
// Geometry and tier limits are checked when the engine params are built.
func (c TileMatchConfig) Validate() error {
	var errs []error
	if c.Tray.Capacity < 3 {
		errs = append(errs, fmt.Errorf("tray.capacity must be at least 3, got %d", c.Tray.Capacity))
	}
	if c.Presentation.CheckTicks < 0 {
		errs = append(errs, fmt.Errorf("presentation.check_ticks must not be negative"))
	}
	if c.Presentation.HintTicks < 0 {
		errs = append(errs, fmt.Errorf("presentation.hint_ticks must not be negative"))
	}
	if c.Presentation.PointsPerTile < 0 {
		errs = append(errs, fmt.Errorf("presentation.points_per_tile must not be negative"))
	}
	if c.Presentation.Theme != "" && !slices.Contains(Themes, c.Presentation.Theme) {
		errs = append(errs, fmt.Errorf("presentation.theme %q is unknown (want one of %v)", c.Presentation.Theme, Themes))
	}
	return errors.Join(errs...)
}
