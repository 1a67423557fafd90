package core

import "sort"

// slotKey identifies an exact (cell, layer) placement.
type slotKey struct {
	col, row, z int
}

// Generate builds the tile set for a level using the given RNG.
// The returned tiles are sorted by layer with clickability stamped.
//
// Every type is emitted in whole triples, so the per-type tile count is
// always a multiple of three. Occlusion solvability is not checked.
func Generate(level int, rng *RNG, p Params) []Tile {
	tier := p.TierFor(level)

	types := make([]TileType, 0, tier.TileCount())
	for i := 0; i < tier.Triplets; i++ {
		t := TileType(rng.Range(0, tier.Types))
		types = append(types, t, t, t)
	}

	rng.shuffle(len(types), func(i, j int) {
		types[i], types[j] = types[j], types[i]
	})

	occupied := make(map[slotKey]bool, len(types))
	tiles := make([]Tile, len(types))
	for i, t := range types {
		key := place(rng, tier, p.Layout.PlacementAttempts, occupied)
		occupied[key] = true

		tiles[i] = Tile{
			ID:        i,
			Type:      t,
			Pos:       position(rng, key, p.Layout),
			Cell:      Cell{Col: key.col, Row: key.row},
			SlotIndex: NoSlot,
		}
	}

	sort.SliceStable(tiles, func(i, j int) bool {
		return tiles[i].Pos.Z < tiles[j].Pos.Z
	})

	return UpdateVisibility(tiles, p.Layout)
}

// place picks a free (cell, layer) for a tile, retrying on collisions.
// When all attempts collide it falls back to an unchecked placement.
func place(rng *RNG, tier Tier, attempts int, occupied map[slotKey]bool) slotKey {
	for a := 0; a < attempts; a++ {
		key := randomSlot(rng, tier)
		if !occupied[key] {
			return key
		}
	}
	return randomSlot(rng, tier)
}

func randomSlot(rng *RNG, tier Tier) slotKey {
	z := rng.Range(0, tier.Layers)
	col := rng.Range(0, tier.Cols)
	row := rng.Range(0, tier.Rows)
	return slotKey{col: col, row: row, z: z}
}

// position converts a slot to planar coordinates. Odd layers sit half a
// pitch down and right so they straddle the tiles beneath.
func position(rng *RNG, key slotKey, l Layout) Pos {
	x := float64(key.col) * l.PitchX()
	y := float64(key.row) * l.PitchY()
	if key.z%2 == 1 {
		x += l.PitchX() / 2
		y += l.PitchY() / 2
	}
	x += l.Jitter * (2*rng.Next() - 1)
	y += l.Jitter * (2*rng.Next() - 1)
	return Pos{X: x, Y: y, Z: key.z}
}

// TypeCounts returns how many tiles of each type are in the set.
func TypeCounts(tiles []Tile) map[TileType]int {
	counts := make(map[TileType]int)
	for _, t := range tiles {
		counts[t.Type]++
	}
	return counts
}
