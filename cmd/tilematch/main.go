// tilematch is a stacked tile matching puzzle for the terminal.
//
// Usage:
//
//	tilematch                 - Start the level menu
//	tilematch play            - Play a level directly
//	tilematch gen             - Print a generated board
//	tilematch history         - Show recorded runs
//	tilematch stats           - Show win rates per level
//	tilematch serve           - Start SSH server for remote play
//	tilematch config          - Print the effective configuration
//	tilematch list            - List registered games
//
// Global flags:
//
//	--seed <value>   - Board seed for reproducible levels
//	--db <path>      - Run log database (default: ~/.tilematch/runs.db)
//	--config <path>  - Custom tilematch.yaml
//	--boards-dir     - Saved boards (default: ~/.tilematch/boards)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/logging"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      string
	flagDBPath    string
	flagConfig    string
	flagLogLevel  string
	flagLogFile   string
	flagBoardsDir string

	// Effective game configuration, loaded before every command.
	gameConfig = config.DefaultTileMatchConfig()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilematch",
	Short: "Tile Match - clear the stacked board three of a kind at a time",
	Long: `Tile Match is a terminal puzzle. Tiles are stacked in layers; only
uncovered tiles can be picked. Picked tiles move to a seven slot tray and
three of a kind vanish. Clear the board before the tray fills up.

Available commands:
  play     - Play a level directly
  gen      - Print a generated board
  history  - Show recorded runs
  stats    - Show win rates per level
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  list     - List registered games

Examples:
  tilematch
  tilematch play --difficulty hard
  tilematch play --level 3 --seed daily-42
  tilematch gen --level 2 --seed abc --format yaml
  tilematch serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadTileMatch(flagConfig)
		if err != nil {
			return err
		}
		gameConfig = cfg
		return nil
	},
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "Board seed (empty = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilematch/runs.db", "Path to run log database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tilematch.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagBoardsDir, "boards-dir", "~/.tilematch/boards", "Directory of saved boards")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Interactive commands own the
// terminal, so without --log-file they log nowhere.
func newLogger(prefix string, interactive bool) (*log.Logger, func(), error) {
	noop := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, noop, fmt.Errorf("cannot open log file: %w", err)
		}
		logger, err := logging.New(f, prefix, flagLogLevel)
		if err != nil {
			f.Close()
			return nil, noop, err
		}
		return logger, func() { f.Close() }, nil
	}

	if interactive {
		return logging.Discard(), noop, nil
	}
	logger, err := logging.New(os.Stderr, prefix, flagLogLevel)
	return logger, noop, err
}

// playerName identifies the local player in the run log.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
