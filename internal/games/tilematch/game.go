// Package tilematch provides the stacked tile matching puzzle for the
// terminal platform.
package tilematch

import (
	"math"

	"github.com/vovakirdan/tilematch/internal/config"
	platformcore "github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/tilematch/boards"
	"github.com/vovakirdan/tilematch/internal/games/tilematch/core"
	"github.com/vovakirdan/tilematch/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "tilematch"

// Game adapts a core.Run to the platform game loop: cursor selection,
// tool keys, scoring and presentation timers.
type Game struct {
	cfg    config.TileMatchConfig
	params core.Params
	run    *core.Run
	err    error // set when a run could not be created

	level int
	board *boards.Board // replayed by Reset instead of a generated board

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	// Board placement on screen
	boardW  int
	boardH  int
	offsetX int
	offsetY int

	// Selection and presentation state
	cursor       int // tile ID under the cursor, -1 if none
	hintID       int
	hintTicks    int
	checkTicks   int
	message      string
	messageTicks int

	tick      int
	startTick int
	paused    bool
}

const (
	hudHeight    = 4
	cellW        = 4 // screen columns per grid column
	cellH        = 2 // screen rows per grid row
	tileW        = 3 // "[A]"
	messageTicks = 60
)

func init() {
	registry.Register(ID, func(cfg config.TileMatchConfig) registry.Game {
		return New(cfg)
	})
}

// New creates a tile match game with the given configuration.
func New(cfg config.TileMatchConfig) *Game {
	return &Game{
		cfg:    cfg,
		params: ParamsFromConfig(cfg),
		cursor: -1,
		hintID: -1,
		level:  1,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tile Match"
}

// Reset starts a new run at cfg.Level with cfg.Seed, or on the board set
// with UseBoard.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.level = cfg.Level
	if g.level < 1 {
		g.level = 1
	}
	g.paused = false

	if g.board != nil {
		g.level = g.board.Level
		g.setRun(g.board.NewRun(g.params))
		return
	}
	g.startRun(cfg.Seed)
}

// UseBoard makes Reset replay a saved board. New runs started after it
// ends are generated as usual.
func (g *Game) UseBoard(b boards.Board) {
	g.board = &b
}

// Resize updates the screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.calculateLayout()
}

func (g *Game) startRun(seed string) {
	run, err := core.NewRun(g.level, seed, g.params)
	g.setRun(run, err)
}

func (g *Game) setRun(run *core.Run, err error) {
	g.run, g.err = run, err
	g.cursor = -1
	g.hintID = -1
	g.hintTicks = 0
	g.checkTicks = 0
	g.message = ""
	g.messageTicks = 0
	g.startTick = g.tick
	if run == nil {
		return
	}
	g.calculateLayout()
	g.ensureCursor(0, 0)
}

// Run returns the current run, nil if none could be created.
func (g *Game) Run() *core.Run {
	return g.run
}

// Cursor returns the tile ID under the cursor, or -1.
func (g *Game) Cursor() int {
	return g.cursor
}

// Message returns the current HUD message.
func (g *Game) Message() string {
	return g.message
}

// calculateLayout measures the board and centers it below the HUD.
func (g *Game) calculateLayout() {
	if g.run == nil {
		return
	}
	g.boardW, g.boardH = 0, 0
	for _, t := range g.run.Tiles() {
		x, y := g.tileOffset(t)
		g.boardW = platformcore.Max(g.boardW, x+tileW)
		g.boardH = platformcore.Max(g.boardH, y+1)
	}

	// HUD, board, tray box, tools line and message line
	neededW := platformcore.Max(g.boardW, g.trayWidth()) + 2
	neededH := hudHeight + 1 + g.boardH + 1 + 3 + 2
	g.tooSmall = g.screenW < neededW || g.screenH < neededH

	g.offsetX = (g.screenW - g.boardW) / 2
	g.offsetY = hudHeight + 1
}

// tileOffset maps a tile's layout position to screen cells relative to
// the board origin. Half-pitch layer offsets land on half cells.
func (g *Game) tileOffset(t core.Tile) (int, int) {
	l := g.params.Layout
	x := int(math.Round(t.Pos.X / l.PitchX() * cellW))
	y := int(math.Round(t.Pos.Y / l.PitchY() * cellH))
	return x, y
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.decayTimers()

	if g.run == nil {
		if input.Has(platformcore.ActionRestart) {
			g.startRun("")
		}
		return g.result()
	}

	status := g.run.Status()

	if status.Terminal() {
		switch {
		case input.Has(platformcore.ActionUndo) && status == core.StatusLost:
			g.useUndo()
		case input.Has(platformcore.ActionConfirm) && status == core.StatusWon:
			g.level++
			g.startRun("")
		case input.Has(platformcore.ActionRestart):
			g.startRun("")
		}
		return g.result()
	}

	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return g.result()
	}

	switch {
	case input.Has(platformcore.ActionLeft):
		g.moveCursor(-1, 0)
	case input.Has(platformcore.ActionRight):
		g.moveCursor(1, 0)
	case input.Has(platformcore.ActionUp):
		g.moveCursor(0, -1)
	case input.Has(platformcore.ActionDown):
		g.moveCursor(0, 1)
	}

	switch {
	case input.Has(platformcore.ActionConfirm):
		g.pick()
	case input.Has(platformcore.ActionUndo):
		g.useUndo()
	case input.Has(platformcore.ActionShuffle):
		g.useShuffle()
	case input.Has(platformcore.ActionHint):
		g.useHint()
	case input.Has(platformcore.ActionRestart):
		g.useRestart()
	}

	return g.result()
}

func (g *Game) decayTimers() {
	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.hintID = -1
		}
	}
	if g.checkTicks > 0 {
		g.checkTicks--
	}
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}
}

func (g *Game) say(msg string) {
	g.message = msg
	g.messageTicks = messageTicks
}

func (g *Game) result() platformcore.StepResult {
	return platformcore.StepResult{State: g.State(), Message: g.message}
}

func (g *Game) pick() {
	if g.cursor < 0 {
		g.say(core.Rejection(core.ErrNoHint))
		return
	}
	picked, _ := g.run.Tile(g.cursor)
	m, err := g.run.Pick(g.cursor)
	if err != nil {
		g.say(core.Rejection(err))
		return
	}
	g.checkTicks = g.cfg.Presentation.CheckTicks
	if g.hintID == picked.ID {
		g.hintID, g.hintTicks = -1, 0
	}

	switch {
	case m.Matched:
		g.say("Matched " + m.Type.String() + "!")
	case g.run.Status() == core.StatusLost && g.run.BoardCount() == 0:
		g.say("No tiles left")
	case g.run.Status() == core.StatusLost:
		g.say("Tray full")
	}
	if g.run.Status() == core.StatusWon {
		g.say("Board cleared!")
	}

	x, y := g.tileOffset(picked)
	g.ensureCursor(x, y)
}

func (g *Game) useUndo() {
	if err := g.run.Undo(); err != nil {
		g.say(core.Rejection(err))
		return
	}
	g.say("Undone")
	g.ensureCursor(g.cursorPos())
}

func (g *Game) useShuffle() {
	if err := g.run.Shuffle(); err != nil {
		g.say(core.Rejection(err))
		return
	}
	g.hintID, g.hintTicks = -1, 0
	g.say("Shuffled")
}

func (g *Game) useHint() {
	id, err := g.run.Hint()
	if err != nil {
		g.say(core.Rejection(err))
		return
	}
	g.hintID = id
	g.hintTicks = g.cfg.Presentation.HintTicks
	if g.hintTicks == 0 {
		g.hintTicks = 1
	}
	g.cursor = id
	g.say("Try this one")
}

func (g *Game) useRestart() {
	next, err := g.run.Restart("")
	if err != nil {
		g.say(core.Rejection(err))
		return
	}
	g.setRun(next, nil)
	g.say("New board")
}

func (g *Game) cursorPos() (int, int) {
	if t, ok := g.run.Tile(g.cursor); ok {
		return g.tileOffset(t)
	}
	return 0, 0
}

// ensureCursor keeps the cursor on a clickable tile, moving it to the
// clickable tile nearest to (x, y) when needed.
func (g *Game) ensureCursor(x, y int) {
	if t, ok := g.run.Tile(g.cursor); ok && t.Clickable {
		return
	}
	g.cursor = -1
	best := math.MaxInt
	for _, t := range g.run.Tiles() {
		if !t.Clickable {
			continue
		}
		tx, ty := g.tileOffset(t)
		d := platformcore.Abs(tx-x) + 2*platformcore.Abs(ty-y)
		if d < best {
			best = d
			g.cursor = t.ID
		}
	}
}

// moveCursor jumps to the nearest clickable tile in the given direction.
// Distance along the movement axis counts once, off-axis distance twice.
func (g *Game) moveCursor(dx, dy int) {
	cur, ok := g.run.Tile(g.cursor)
	if !ok {
		g.ensureCursor(0, 0)
		return
	}
	cx, cy := g.tileOffset(cur)

	bestID, best := -1, math.MaxInt
	for _, t := range g.run.Tiles() {
		if !t.Clickable || t.ID == cur.ID {
			continue
		}
		tx, ty := g.tileOffset(t)
		ox, oy := tx-cx, ty-cy

		var along, across int
		switch {
		case dx > 0:
			along, across = ox, oy
		case dx < 0:
			along, across = -ox, oy
		case dy > 0:
			along, across = oy, ox
		default:
			along, across = -oy, ox
		}
		if along <= 0 {
			continue
		}
		d := along + 2*platformcore.Abs(across)
		if d < best {
			best = d
			bestID = t.ID
		}
	}
	if bestID >= 0 {
		g.cursor = bestID
	}
}

// Score returns points for matched tiles.
func (g *Game) Score() int {
	if g.run == nil {
		return 0
	}
	return g.run.Matches() * 3 * g.cfg.Presentation.PointsPerTile
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Score:  g.Score(),
		Paused: g.paused,
	}
	if g.run != nil {
		st.GameOver = g.run.Status().Terminal()
		st.Won = g.run.Status() == core.StatusWon
	}
	return st
}

// Outcome summarizes the current run. The bool is false until the run
// reaches a terminal state.
func (g *Game) Outcome() (platformcore.RunOutcome, bool) {
	if g.run == nil {
		return platformcore.RunOutcome{}, false
	}
	used := 0
	for _, t := range core.Tools {
		used += g.run.Used(t)
	}
	out := platformcore.RunOutcome{
		RunID:     g.run.ID(),
		Level:     g.run.Level(),
		Tier:      g.run.Tier().Name,
		Seed:      g.run.Seed(),
		Status:    g.run.Status().String(),
		Picks:     g.run.Picks(),
		Matches:   g.run.Matches(),
		ToolsUsed: used,
		Score:     g.Score(),
		Ticks:     g.tick - g.startTick,
	}
	return out, g.run.Status().Terminal()
}

var (
	_ registry.OutcomeReporter = (*Game)(nil)
	_ registry.Resizer         = (*Game)(nil)
	_ registry.BoardPlayer     = (*Game)(nil)
)
