package core_test

import (
	"testing"

	"github.com/vovakirdan/tilematch/internal/games/tilematch/core"
)

// flatBoard lays tiles out on layer 0, far enough apart that none
// occlude each other. Tile IDs follow argument order.
func flatBoard(types ...core.TileType) []core.Tile {
	tiles := make([]core.Tile, len(types))
	for i, tt := range types {
		tiles[i] = core.Tile{
			ID:        i,
			Type:      tt,
			Pos:       core.Pos{X: float64(i) * 100, Y: 0, Z: 0},
			Cell:      core.Cell{Col: i},
			SlotIndex: core.NoSlot,
		}
	}
	return tiles
}

func mustRun(t *testing.T, tiles []core.Tile) *core.Run {
	t.Helper()
	run, err := core.NewRunFromTiles(1, "fixture", tiles, core.DefaultParams())
	if err != nil {
		t.Fatalf("NewRunFromTiles failed: %v", err)
	}
	return run
}

func mustPick(t *testing.T, run *core.Run, id int) core.Match {
	t.Helper()
	m, err := run.Pick(id)
	if err != nil {
		t.Fatalf("Pick(%d) failed: %v", id, err)
	}
	return m
}

func trayIDs(run *core.Run) []int {
	tray := run.Tray()
	ids := make([]int, len(tray))
	for i, tile := range tray {
		ids[i] = tile.ID
	}
	return ids
}
