package core

import (
	"errors"
	"fmt"
)

// Tier describes the board produced for a difficulty tier.
type Tier struct {
	Name     string
	Types    int // Palette size used
	Triplets int // Number of matched triples (tiles = 3 * Triplets)
	Layers   int // Stack layers
	Cols     int // Grid columns per layer
	Rows     int // Grid rows per layer
}

// TileCount returns the number of tiles generated for the tier.
func (t Tier) TileCount() int {
	return t.Triplets * 3
}

// Layout defines tile geometry. TileWidth and TileHeight double as the
// occlusion tolerance; cell pitch is tile size plus gap.
type Layout struct {
	TileWidth         float64
	TileHeight        float64
	GapX              float64
	GapY              float64
	Jitter            float64 // Max absolute jitter per axis
	PlacementAttempts int     // Collision retries before an unchecked placement
}

// PitchX returns the horizontal distance between neighbouring cells.
func (l Layout) PitchX() float64 {
	return l.TileWidth + l.GapX
}

// PitchY returns the vertical distance between neighbouring cells.
func (l Layout) PitchY() float64 {
	return l.TileHeight + l.GapY
}

// ToolLimits caps how often each tool may be used in a run.
type ToolLimits struct {
	Undo    int
	Shuffle int
	Hint    int
	Restart int
}

// Limit returns the cap for a tool.
func (l ToolLimits) Limit(t Tool) int {
	switch t {
	case ToolUndo:
		return l.Undo
	case ToolShuffle:
		return l.Shuffle
	case ToolHint:
		return l.Hint
	case ToolRestart:
		return l.Restart
	default:
		return 0
	}
}

// Params configures generation and play.
type Params struct {
	Easy         Tier
	Hard         Tier
	Layout       Layout
	TrayCapacity int
	Tools        ToolLimits
}

// DefaultParams returns the stock difficulty table and rules.
func DefaultParams() Params {
	return Params{
		Easy: Tier{Name: "easy", Types: 6, Triplets: 12, Layers: 3, Cols: 5, Rows: 5},
		Hard: Tier{Name: "hard", Types: 12, Triplets: 30, Layers: 4, Cols: 7, Rows: 6},
		Layout: Layout{
			TileWidth:         40,
			TileHeight:        48,
			GapX:              8,
			GapY:              8,
			Jitter:            3,
			PlacementAttempts: 50,
		},
		TrayCapacity: 7,
		Tools:        ToolLimits{Undo: 1, Shuffle: 1, Hint: 1, Restart: 1},
	}
}

// TierFor returns the tier for a level number. Level 1 (and anything
// below) is easy; every later level is hard.
func (p Params) TierFor(level int) Tier {
	if level <= 1 {
		return p.Easy
	}
	return p.Hard
}

// Validate checks that the parameters keep the engine invariants.
func (p Params) Validate() error {
	for _, t := range []Tier{p.Easy, p.Hard} {
		if t.Types < 1 || t.Types > len(Palette) {
			return fmt.Errorf("tier %s: types must be in [1, %d], got %d", t.Name, len(Palette), t.Types)
		}
		if t.Triplets < 1 {
			return fmt.Errorf("tier %s: triplets must be positive", t.Name)
		}
		if t.Layers < 1 || t.Cols < 1 || t.Rows < 1 {
			return fmt.Errorf("tier %s: layers, cols and rows must be positive", t.Name)
		}
	}
	if p.TrayCapacity < 3 {
		return fmt.Errorf("tray capacity must be at least 3, got %d", p.TrayCapacity)
	}
	l := p.Layout
	if l.TileWidth <= 0 || l.TileHeight <= 0 {
		return errors.New("tile size must be positive")
	}
	if l.GapX < 0 || l.GapY < 0 || l.Jitter < 0 {
		return errors.New("gaps and jitter must not be negative")
	}
	if l.GapX >= l.TileWidth || l.GapY >= l.TileHeight {
		return errors.New("gap must be smaller than the tile so offset layers overlap")
	}
	// Neighbouring cells sit a full pitch apart and offset layers half a
	// pitch apart; jitter from both tiles must not carry either distance
	// across the tolerance.
	if 2*l.Jitter > l.GapX || 2*l.Jitter > l.GapY ||
		2*l.Jitter >= (l.TileWidth-l.GapX)/2 || 2*l.Jitter >= (l.TileHeight-l.GapY)/2 {
		return fmt.Errorf("jitter %.1f is too large for the tile layout", l.Jitter)
	}
	if l.PlacementAttempts < 1 {
		return errors.New("placement attempts must be positive")
	}
	for _, t := range Tools {
		if p.Tools.Limit(t) < 0 {
			return fmt.Errorf("tool %s: limit must not be negative", t)
		}
	}
	return nil
}
