// Package core contains the tile-matching engine: seeded level generation,
// the stacked occlusion model and the slot tray state machine.
// It has no dependencies on the platform, storage or UI.
package core

import "strings"

// TileType is a piece category. Values index into Palette.
type TileType int

// Palette lists every piece category in declaration order.
// Easier tiers use a prefix of this list.
var Palette = []TypeInfo{
	{Name: "apple", Glyph: 'A'},
	{Name: "banana", Glyph: 'B'},
	{Name: "cherry", Glyph: 'C'},
	{Name: "grape", Glyph: 'G'},
	{Name: "lemon", Glyph: 'L'},
	{Name: "orange", Glyph: 'O'},
	{Name: "peach", Glyph: 'P'},
	{Name: "kiwi", Glyph: 'K'},
	{Name: "mango", Glyph: 'M'},
	{Name: "melon", Glyph: 'W'},
	{Name: "plum", Glyph: 'U'},
	{Name: "strawberry", Glyph: 'S'},
}

// TypeInfo describes a palette entry.
type TypeInfo struct {
	Name  string
	Glyph rune
}

// String returns the palette name of the type.
func (t TileType) String() string {
	if t < 0 || int(t) >= len(Palette) {
		return "unknown"
	}
	return Palette[t].Name
}

// Glyph returns the single-character symbol of the type.
func (t TileType) Glyph() rune {
	if t < 0 || int(t) >= len(Palette) {
		return '?'
	}
	return Palette[t].Glyph
}

// ParseTileType resolves a palette name or glyph, case-insensitively.
func ParseTileType(s string) (TileType, bool) {
	s = strings.TrimSpace(s)
	for i, info := range Palette {
		if strings.EqualFold(s, info.Name) || strings.EqualFold(s, string(info.Glyph)) {
			return TileType(i), true
		}
	}
	return 0, false
}

// Pos is a tile's placement. X and Y are planar coordinates (including
// cosmetic jitter); Z is the stack layer, 0 at the bottom.
type Pos struct {
	X, Y float64
	Z    int
}

// Cell is the grid cell a tile was placed in on its layer.
type Cell struct {
	Col, Row int
}

// NoSlot marks a tile that is not parked in the tray.
const NoSlot = -1

// Tile is a single game piece.
type Tile struct {
	ID        int
	Type      TileType
	Pos       Pos
	Cell      Cell
	Clickable bool
	Removed   bool
	SlotIndex int
}

// InTray returns true if the tile is currently parked in the tray.
func (t Tile) InTray() bool {
	return t.SlotIndex != NoSlot
}

// OnBoard returns true if the tile has not left the board.
func (t Tile) OnBoard() bool {
	return !t.Removed && t.SlotIndex == NoSlot
}

// CloneTiles returns a copy of the tile slice.
func CloneTiles(tiles []Tile) []Tile {
	out := make([]Tile, len(tiles))
	copy(out, tiles)
	return out
}

// Status is the run state machine state.
type Status int

const (
	StatusPlaying Status = iota
	StatusChecking
	StatusWon
	StatusLost
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusChecking:
		return "checking"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal returns true for Won and Lost.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// MoveKind identifies a recorded player action.
type MoveKind int

const (
	MovePick MoveKind = iota
)

// Move is a history entry. From is the tile's board position before the move.
type Move struct {
	Kind   MoveKind
	TileID int
	From   Pos
}

// Tool is a single-use assistance tool.
type Tool int

const (
	ToolUndo Tool = iota
	ToolShuffle
	ToolHint
	ToolRestart
	toolCount
)

// Tools lists all tools in display order.
var Tools = []Tool{ToolUndo, ToolShuffle, ToolHint, ToolRestart}

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolUndo:
		return "undo"
	case ToolShuffle:
		return "shuffle"
	case ToolHint:
		return "hint"
	case ToolRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Match describes the triple consumed by a pick, if any.
type Match struct {
	Matched bool
	Type    TileType
	TileIDs [3]int
}
