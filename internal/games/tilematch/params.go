package tilematch

import (
	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/games/tilematch/core"
)

// ParamsFromConfig converts the YAML configuration into engine parameters.
// The result still has to pass core.Params.Validate.
func ParamsFromConfig(cfg config.TileMatchConfig) core.Params {
	return core.Params{
		Easy:         tierFromConfig(string(config.DifficultyEasy), cfg.Tiers.Easy),
		Hard:         tierFromConfig(string(config.DifficultyHard), cfg.Tiers.Hard),
		TrayCapacity: cfg.Tray.Capacity,
		Layout: core.Layout{
			TileWidth:         cfg.Layout.TileWidth,
			TileHeight:        cfg.Layout.TileHeight,
			GapX:              cfg.Layout.GapX,
			GapY:              cfg.Layout.GapY,
			Jitter:            cfg.Layout.Jitter,
			PlacementAttempts: cfg.Layout.PlacementAttempts,
		},
		Tools: core.ToolLimits{
			Undo:    cfg.Tools.Undo,
			Shuffle: cfg.Tools.Shuffle,
			Hint:    cfg.Tools.Hint,
			Restart: cfg.Tools.Restart,
		},
	}
}

func tierFromConfig(name string, t config.TierConfig) core.Tier {
	return core.Tier{
		Name:     name,
		Types:    t.Types,
		Triplets: t.Triplets,
		Layers:   t.Layers,
		Cols:     t.Cols,
		Rows:     t.Rows,
	}
}
