package core_test

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/tilematch/internal/games/tilematch/core"
)

func TestGenerateDeterministic(t *testing.T) {
	p := core.DefaultParams()
	for _, level := range []int{1, 2, 5} {
		t.Run(fmt.Sprintf("level%d", level), func(t *testing.T) {
			a, err := core.NewRun(level, "repeatable", p)
			if err != nil {
				t.Fatalf("NewRun failed: %v", err)
			}
			b, err := core.NewRun(level, "repeatable", p)
			if err != nil {
				t.Fatalf("NewRun failed: %v", err)
			}

			if !reflect.DeepEqual(a.Tiles(), b.Tiles()) {
				t.Error("same seed produced different tile sets")
			}
			if a.Hash() != b.Hash() {
				t.Errorf("hash mismatch: %d != %d", a.Hash(), b.Hash())
			}
		})
	}
}

func TestGenerateSameDrawCount(t *testing.T) {
	p := core.DefaultParams()
	a, b := core.NewRNG("draws"), core.NewRNG("draws")
	core.Generate(2, a, p)
	core.Generate(2, b, p)

	if a.Draws() != b.Draws() {
		t.Errorf("draw counts differ: %d vs %d", a.Draws(), b.Draws())
	}
	if a.Next() != b.Next() {
		t.Error("streams diverged after generation")
	}
}

func TestGenerateTierSizes(t *testing.T) {
	p := core.DefaultParams()
	tests := []struct {
		level     int
		tiles     int
		types     int
		maxLayers int
	}{
		{level: 0, tiles: 36, types: 6, maxLayers: 3},
		{level: 1, tiles: 36, types: 6, maxLayers: 3},
		{level: 2, tiles: 90, types: 12, maxLayers: 4},
		{level: 9, tiles: 90, types: 12, maxLayers: 4},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("level%d", tc.level), func(t *testing.T) {
			tiles := core.Generate(tc.level, core.NewRNG("sizes"), p)
			if len(tiles) != tc.tiles {
				t.Fatalf("expected %d tiles, got %d", tc.tiles, len(tiles))
			}

			ids := make(map[int]bool)
			for _, tile := range tiles {
				if ids[tile.ID] {
					t.Errorf("duplicate id %d", tile.ID)
				}
				ids[tile.ID] = true

				if int(tile.Type) < 0 || int(tile.Type) >= tc.types {
					t.Errorf("tile %d type %d outside palette of %d", tile.ID, tile.Type, tc.types)
				}
				if tile.Pos.Z < 0 || tile.Pos.Z >= tc.maxLayers {
					t.Errorf("tile %d layer %d out of range", tile.ID, tile.Pos.Z)
				}
				if tile.Removed || tile.InTray() {
					t.Errorf("tile %d should start on the board", tile.ID)
				}
			}
		})
	}
}

func TestGenerateTypeCountsMultipleOfThree(t *testing.T) {
	p := core.DefaultParams()
	for i := 0; i < 50; i++ {
		seed := fmt.Sprintf("triples-%d", i)
		for _, level := range []int{1, 2} {
			tiles := core.Generate(level, core.NewRNG(seed), p)
			for tt, n := range core.TypeCounts(tiles) {
				if n%3 != 0 {
					t.Errorf("seed %s level %d: type %s has %d tiles", seed, level, tt, n)
				}
			}
		}
	}
}

func TestGenerateSortedByLayer(t *testing.T) {
	tiles := core.Generate(2, core.NewRNG("sorted"), core.DefaultParams())
	for i := 1; i < len(tiles); i++ {
		if tiles[i].Pos.Z < tiles[i-1].Pos.Z {
			t.Fatalf("tiles not sorted by layer at index %d", i)
		}
	}
}

func TestGenerateStampsVisibility(t *testing.T) {
	p := core.DefaultParams()
	tiles := core.Generate(2, core.NewRNG("stamped"), p)

	if !reflect.DeepEqual(tiles, core.UpdateVisibility(tiles, p.Layout)) {
		t.Error("generated tiles should already carry computed clickability")
	}
	if len(core.ClickableIDs(tiles)) == 0 {
		t.Error("expected at least one clickable tile")
	}
}

func TestGenerateJitterDoesNotChangeOcclusion(t *testing.T) {
	p := core.DefaultParams()
	l := p.Layout

	for i := 0; i < 20; i++ {
		tiles := core.Generate(2, core.NewRNG(fmt.Sprintf("jitter-%d", i)), p)

		snapped := core.CloneTiles(tiles)
		for k := range snapped {
			tile := &snapped[k]
			x := float64(tile.Cell.Col) * l.PitchX()
			y := float64(tile.Cell.Row) * l.PitchY()
			if tile.Pos.Z%2 == 1 {
				x += l.PitchX() / 2
				y += l.PitchY() / 2
			}
			if math.Abs(tile.Pos.X-x) > l.Jitter || math.Abs(tile.Pos.Y-y) > l.Jitter {
				t.Fatalf("tile %d jitter exceeds %.1f", tile.ID, l.Jitter)
			}
			tile.Pos.X, tile.Pos.Y = x, y
		}
		snapped = core.UpdateVisibility(snapped, l)

		for k := range tiles {
			if tiles[k].Clickable != snapped[k].Clickable {
				t.Errorf("jitter changed clickability of tile %d", tiles[k].ID)
			}
		}
	}
}

func TestGenerateFallsBackWhenCrowded(t *testing.T) {
	p := core.DefaultParams()
	p.Easy.Cols, p.Easy.Rows, p.Easy.Layers = 1, 1, 1
	p.Layout.PlacementAttempts = 2

	tiles := core.Generate(1, core.NewRNG("crowded"), p)
	if len(tiles) != p.Easy.TileCount() {
		t.Fatalf("expected %d tiles even when crowded, got %d", p.Easy.TileCount(), len(tiles))
	}
	for _, tile := range tiles {
		if tile.Cell != (core.Cell{}) || tile.Pos.Z != 0 {
			t.Errorf("tile %d placed outside the 1x1x1 grid", tile.ID)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *core.Params)
		ok     bool
	}{
		{"defaults", func(p *core.Params) {}, true},
		{"palette too large", func(p *core.Params) { p.Hard.Types = len(core.Palette) + 1 }, false},
		{"no triplets", func(p *core.Params) { p.Easy.Triplets = 0 }, false},
		{"tiny tray", func(p *core.Params) { p.TrayCapacity = 2 }, false},
		{"jitter crosses gap", func(p *core.Params) { p.Layout.Jitter = 5 }, false},
		{"gap as wide as tile", func(p *core.Params) { p.Layout.GapX = 40 }, false},
		{"negative tool limit", func(p *core.Params) { p.Tools.Hint = -1 }, false},
		{"zero attempts", func(p *core.Params) { p.Layout.PlacementAttempts = 0 }, false},
		{"no jitter", func(p *core.Params) { p.Layout.Jitter = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := core.DefaultParams()
			tc.modify(&p)
			err := p.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
