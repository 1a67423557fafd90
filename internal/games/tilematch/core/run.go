package core

import (
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
)

// Run is one playthrough: board, slot tray, history and tool counters.
//
// A Run owns its RNG and mutates in place; it is not safe for concurrent
// use. Callers that share a run across goroutines must serialize access.
type Run struct {
	id     string
	level  int
	seed   string
	params Params
	rng    *RNG

	tiles   []Tile
	index   map[int]int // tile ID -> position in tiles
	tray    []int       // tile IDs in slot order
	history []Move
	usage   [toolCount]int
	status  Status

	picks   int
	matches int
}

// NewRun generates a new run for the level. An empty seed is replaced
// with a freshly generated one.
func NewRun(level int, seed string, p Params) (*Run, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	if level < 1 {
		level = 1
	}
	if seed == "" {
		seed = NewSeed()
	}

	rng := NewRNG(seed)
	tiles := Generate(level, rng, p)
	return newRun(level, seed, rng, tiles, p), nil
}

// NewRunFromTiles builds a run around a prepared board. Tiles keep their
// order; clickability is recomputed. Used for fixtures and replays.
func NewRunFromTiles(level int, seed string, tiles []Tile, p Params) (*Run, error) {
	return ResumeRun(level, seed, tiles, 0, p)
}

// ResumeRun is NewRunFromTiles with the seed's stream advanced past draws
// values, so later shuffles continue where the original run left off.
func ResumeRun(level int, seed string, tiles []Tile, draws uint64, p Params) (*Run, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid params: %w", err)
	}
	seen := make(map[int]bool, len(tiles))
	board := CloneTiles(tiles)
	for i := range board {
		if seen[board[i].ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateTile, board[i].ID)
		}
		seen[board[i].ID] = true
		board[i].Removed = false
		board[i].SlotIndex = NoSlot
	}
	board = UpdateVisibility(board, p.Layout)

	rng := NewRNG(seed)
	rng.Skip(draws)
	return newRun(level, seed, rng, board, p), nil
}

func newRun(level int, seed string, rng *RNG, tiles []Tile, p Params) *Run {
	r := &Run{
		id:      uuid.NewString(),
		level:   level,
		seed:    seed,
		params:  p,
		rng:     rng,
		tiles:   tiles,
		index:   make(map[int]int, len(tiles)),
		tray:    make([]int, 0, p.TrayCapacity),
		history: make([]Move, 0),
		status:  StatusPlaying,
	}
	for i, t := range tiles {
		r.index[t.ID] = i
	}
	return r
}

// ID returns the unique run identifier.
func (r *Run) ID() string { return r.id }

// Level returns the level number.
func (r *Run) Level() int { return r.level }

// Seed returns the seed that drives all randomness of the run.
func (r *Run) Seed() string { return r.seed }

// Tier returns the difficulty tier of the run.
func (r *Run) Tier() Tier { return r.params.TierFor(r.level) }

// Params returns the parameters the run was created with.
func (r *Run) Params() Params { return r.params }

// Status returns the current state.
func (r *Run) Status() Status { return r.status }

// Capacity returns the tray capacity.
func (r *Run) Capacity() int { return r.params.TrayCapacity }

// Picks returns the number of accepted picks, including undone ones.
func (r *Run) Picks() int { return r.picks }

// Draws returns how far the run's RNG has advanced.
func (r *Run) Draws() uint64 { return r.rng.Draws() }

// Matches returns the number of triples cleared.
func (r *Run) Matches() int { return r.matches }

// Tiles returns a copy of all tiles in board order.
func (r *Run) Tiles() []Tile {
	return CloneTiles(r.tiles)
}

// Tile returns a tile by ID.
func (r *Run) Tile(id int) (Tile, bool) {
	i, ok := r.index[id]
	if !ok {
		return Tile{}, false
	}
	return r.tiles[i], true
}

// Tray returns the tiles in the tray in slot order.
func (r *Run) Tray() []Tile {
	out := make([]Tile, len(r.tray))
	for i, id := range r.tray {
		out[i] = r.tiles[r.index[id]]
	}
	return out
}

// History returns a copy of the recorded moves.
func (r *Run) History() []Move {
	out := make([]Move, len(r.history))
	copy(out, r.history)
	return out
}

// Used returns how many times a tool has been used.
func (r *Run) Used(t Tool) int {
	if t < 0 || t >= toolCount {
		return 0
	}
	return r.usage[t]
}

// Remaining returns how many uses of a tool are left.
func (r *Run) Remaining(t Tool) int {
	left := r.params.Tools.Limit(t) - r.Used(t)
	if left < 0 {
		return 0
	}
	return left
}

// BoardCount returns the number of tiles still on the board.
func (r *Run) BoardCount() int {
	n := 0
	for _, t := range r.tiles {
		if t.OnBoard() {
			n++
		}
	}
	return n
}

// ClickableIDs returns the clickable tile IDs in board order.
func (r *Run) ClickableIDs() []int {
	return ClickableIDs(r.tiles)
}

// Pick moves a clickable tile from the board into the tray and resolves
// any resulting match before returning.
func (r *Run) Pick(id int) (Match, error) {
	if r.status != StatusPlaying {
		return Match{}, ErrNotPlaying
	}
	i, ok := r.index[id]
	if !ok {
		return Match{}, fmt.Errorf("%w: %d", ErrUnknownTile, id)
	}
	if !r.tiles[i].Clickable {
		return Match{}, ErrNotClickable
	}
	if len(r.tray) >= r.params.TrayCapacity {
		return Match{}, ErrTrayFull
	}

	r.history = append(r.history, Move{Kind: MovePick, TileID: id, From: r.tiles[i].Pos})
	r.tiles[i].Removed = true
	r.tiles[i].SlotIndex = len(r.tray)
	r.tray = append(r.tray, id)
	r.picks++
	r.refresh()

	r.status = StatusChecking
	return r.resolve(), nil
}

// resolve consumes at most one triple from the tray and settles the status.
// The first type to reach three instances in tray order wins ties, and its
// first three instances are the ones removed.
func (r *Run) resolve() Match {
	counts := make(map[TileType]int)
	found := false
	var matched TileType
	for _, id := range r.tray {
		t := r.tiles[r.index[id]].Type
		counts[t]++
		if counts[t] >= 3 {
			matched = t
			found = true
			break
		}
	}

	if !found {
		switch {
		case len(r.tray) >= r.params.TrayCapacity:
			r.status = StatusLost
		case r.boardCleared():
			// The tray holds leftovers that can never complete a triple.
			r.status = StatusLost
		default:
			r.status = StatusPlaying
		}
		return Match{}
	}

	m := Match{Matched: true, Type: matched}
	kept := make([]int, 0, len(r.tray))
	taken := 0
	for _, id := range r.tray {
		i := r.index[id]
		if taken < 3 && r.tiles[i].Type == matched {
			m.TileIDs[taken] = id
			r.tiles[i].SlotIndex = NoSlot
			taken++
			continue
		}
		kept = append(kept, id)
	}
	r.tray = kept
	r.reindexTray()
	r.matches++

	if len(r.tray) == 0 && r.boardCleared() {
		r.status = StatusWon
	} else {
		r.status = StatusPlaying
	}
	return m
}

// settle re-evaluates the status without consuming matches.
func (r *Run) settle() {
	switch {
	case len(r.tray) >= r.params.TrayCapacity:
		r.status = StatusLost
	case r.boardCleared() && len(r.tray) == 0:
		r.status = StatusWon
	case r.boardCleared():
		r.status = StatusLost
	default:
		r.status = StatusPlaying
	}
}

func (r *Run) boardCleared() bool {
	for _, t := range r.tiles {
		if !t.Removed {
			return false
		}
	}
	return true
}

func (r *Run) reindexTray() {
	for slot, id := range r.tray {
		r.tiles[r.index[id]].SlotIndex = slot
	}
}

// refresh recomputes clickability after a board mutation.
func (r *Run) refresh() {
	r.tiles = UpdateVisibility(r.tiles, r.params.Layout)
}

// Snapshot is a detached copy of a run for rendering and reporting.
type Snapshot struct {
	ID        string
	Level     int
	Seed      string
	Status    Status
	Tiles     []Tile
	Tray      []Tile
	Capacity  int
	Remaining map[Tool]int
	Picks     int
	Matches   int
}

// Snapshot returns a copy of the run state that later moves don't affect.
func (r *Run) Snapshot() Snapshot {
	remaining := make(map[Tool]int, len(Tools))
	for _, t := range Tools {
		remaining[t] = r.Remaining(t)
	}
	return Snapshot{
		ID:        r.id,
		Level:     r.level,
		Seed:      r.seed,
		Status:    r.status,
		Tiles:     r.Tiles(),
		Tray:      r.Tray(),
		Capacity:  r.params.TrayCapacity,
		Remaining: remaining,
		Picks:     r.picks,
		Matches:   r.matches,
	}
}

// Hash returns a digest of the board, tray, history, counters and RNG
// position. Equal hashes mean equal observable state.
func (r *Run) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "S:%d;L:%d;", r.status, r.level)

	fmt.Fprintf(h, "T:")
	for _, t := range r.tiles {
		fmt.Fprintf(h, "%d:%d:%.4f:%.4f:%d:%v:%v:%d,",
			t.ID, t.Type, t.Pos.X, t.Pos.Y, t.Pos.Z, t.Clickable, t.Removed, t.SlotIndex)
	}

	fmt.Fprintf(h, ";Y:")
	for _, id := range r.tray {
		fmt.Fprintf(h, "%d,", id)
	}

	fmt.Fprintf(h, ";H:")
	for _, m := range r.history {
		fmt.Fprintf(h, "%d:%d,", m.Kind, m.TileID)
	}

	fmt.Fprintf(h, ";U:%v;R:%d", r.usage, r.rng.Draws())

	return h.Sum64()
}
