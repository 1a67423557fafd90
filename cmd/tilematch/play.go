package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/core"
	"github.com/vovakirdan/tilematch/internal/games/tilematch"
	"github.com/vovakirdan/tilematch/internal/games/tilematch/boards"
	"github.com/vovakirdan/tilematch/internal/platform/tui"
	"github.com/vovakirdan/tilematch/internal/registry"
	"github.com/vovakirdan/tilematch/internal/storage"
)

var (
	flagLevel      int
	flagDifficulty string
	flagBoard      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start playing a level directly, without the menu.

Controls:
  Arrows/WASD  - Move the cursor between pickable tiles
  Enter/Space  - Pick the tile under the cursor
  U            - Undo the last pick
  X            - Shuffle the board
  H            - Hint
  R            - Restart tool, or a new board after the run ends
  P            - Pause
  Q/Ctrl+C     - Quit

Difficulty options:
  easy  - Level 1: 6 tile types, 36 tiles
  hard  - Level 2: 12 tile types, 90 tiles

Examples:
  tilematch play
  tilematch play --difficulty hard
  tilematch play --level 4 --seed daily-42
  tilematch play --config ./my-tilematch.yaml
  tilematch play --board daily
  tilematch play --board ./shared.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to play (1 = easy tier, 2+ = hard tier)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, hard (overrides --level)")
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Replay a saved board: file path or ID in --boards-dir")
}

// runtimeConfig builds the platform config from flags and the terminal size.
func runtimeConfig(level int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Level = level
	cfg.Theme = gameConfig.Presentation.Theme
	return cfg
}

// createGame builds the game, replaying the saved board ref when given.
// The returned level is the board's level in that case.
func createGame(id string, level int, ref string) (registry.Game, int, error) {
	if ref == "" {
		game, err := registry.Create(id, gameConfig)
		return game, level, err
	}

	b, err := boards.NewLoader(flagBoardsDir).Resolve(ref)
	if err != nil {
		return nil, 0, err
	}
	game, err := registry.Replay(id, gameConfig, b)
	if err != nil {
		return nil, 0, err
	}
	return game, b.Level, nil
}

// resolveLevel applies --difficulty over --level.
func resolveLevel(level int, difficulty string) (int, error) {
	if difficulty != "" {
		preset, err := config.ParsePreset(difficulty)
		if err != nil {
			return 0, err
		}
		return config.LevelForPreset(preset), nil
	}
	if level < 1 {
		return 0, fmt.Errorf("level must be at least 1, got %d", level)
	}
	return level, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	level, err := resolveLevel(flagLevel, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, level, err := createGame(tilematch.ID, level, flagBoard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("tilematch", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, logger, runtimeConfig(level), playerName())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
