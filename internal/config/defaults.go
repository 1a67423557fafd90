package config

import (
	_ "embed"
)

//go:embed defaults/tilematch.yaml
var defaultTileMatchYAML []byte

// DefaultTileMatchConfig returns the hard-coded tile match configuration.
// It matches the embedded defaults/tilematch.yaml.
func DefaultTileMatchConfig() TileMatchConfig {
	return TileMatchConfig{
		Tray: TrayConfig{
			Capacity: 7,
		},
		Tools: ToolsConfig{
			Undo:    1,
			Shuffle: 1,
			Hint:    1,
			Restart: 1,
		},
		Layout: LayoutConfig{
			TileWidth:         40,
			TileHeight:        48,
			GapX:              8,
			GapY:              8,
			Jitter:            3,
			PlacementAttempts: 50,
		},
		Tiers: TiersConfig{
			Easy: TierConfig{Types: 6, Triplets: 12, Layers: 3, Cols: 5, Rows: 5},
			Hard: TierConfig{Types: 12, Triplets: 30, Layers: 4, Cols: 7, Rows: 6},
		},
		Presentation: PresentationConfig{
			CheckTicks:    6,
			HintTicks:     45,
			PointsPerTile: 10,
			Theme:         "default",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tilematch":
		return defaultTileMatchYAML
	default:
		return nil
	}
}
