package core

import "math"

// Covers returns true if upper occludes lower: upper is on a strictly
// higher layer and within one tile size on both axes.
func Covers(upper, lower Tile, l Layout) bool {
	if upper.Pos.Z <= lower.Pos.Z {
		return false
	}
	return math.Abs(upper.Pos.X-lower.Pos.X) < l.TileWidth &&
		math.Abs(upper.Pos.Y-lower.Pos.Y) < l.TileHeight
}

// UpdateVisibility returns a copy of tiles with Clickable recomputed.
// Removed and tray tiles are never clickable and never occlude.
func UpdateVisibility(tiles []Tile, l Layout) []Tile {
	out := CloneTiles(tiles)
	for i := range out {
		out[i].Clickable = out[i].OnBoard() && !covered(tiles, i, l)
	}
	return out
}

func covered(tiles []Tile, idx int, l Layout) bool {
	target := tiles[idx]
	for i, other := range tiles {
		if i == idx || !other.OnBoard() {
			continue
		}
		if Covers(other, target, l) {
			return true
		}
	}
	return false
}

// ClickableIDs returns the IDs of clickable tiles in board order.
func ClickableIDs(tiles []Tile) []int {
	ids := make([]int, 0)
	for _, t := range tiles {
		if t.Clickable {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
