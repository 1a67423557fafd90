// Package registry keeps the games the platform can start. A game
// registers a factory from its init function; the CLI and the SSH
// sessions create fresh instances from the effective tile match config,
// optionally seeded with a saved board.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/tilematch/boards"
)

// Game is the interface the terminal platform drives.
// Games contain pure logic with no Bubble Tea dependency.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh run using the screen size, level and seed
	// from the runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one platform tick with the given input.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// OutcomeReporter is implemented by games that can summarize a finished
// run for the run log.
type OutcomeReporter interface {
	// Outcome returns the summary of the current run and whether the run
	// has reached a terminal state.
	Outcome() (core.RunOutcome, bool)
}

// Resizer is implemented by games that can follow a terminal resize
// without starting a new run.
type Resizer interface {
	Resize(w, h int)
}

// BoardPlayer is implemented by games that can replay a saved board on
// their next Reset.
type BoardPlayer interface {
	UseBoard(b boards.Board)
}

// ErrNoReplay is returned by Replay for games that cannot play saved boards.
var ErrNoReplay = errors.New("registry: game cannot replay saved boards")

// GameInfo describes a registered game.
type GameInfo struct {
	ID      string
	Title   string
	Replays bool // accepts saved boards
}

// Factory creates a game from the effective tile match configuration.
type Factory func(cfg config.TileMatchConfig) Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f(config.DefaultTileMatchConfig())
	_, replays := g.(BoardPlayer)
	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: g.Title(), Replays: replays}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a new game with the given configuration.
func Create(id string, cfg config.TileMatchConfig) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(cfg), nil
}

// Replay builds a new game whose first run is the saved board b.
func Replay(id string, cfg config.TileMatchConfig, b boards.Board) (Game, error) {
	g, err := Create(id, cfg)
	if err != nil {
		return nil, err
	}
	bp, ok := g.(BoardPlayer)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoReplay, id)
	}
	bp.UseBoard(b)
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
