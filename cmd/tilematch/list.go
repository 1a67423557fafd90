package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilematch/internal/games/tilematch/boards"
	"github.com/vovakirdan/tilematch/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games and saved boards",
	Long:  `Shows the games registered with the platform and the boards saved in --boards-dir.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Saved boards")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "------------")

	for _, g := range games {
		replays := "no"
		if g.Replays {
			replays = "yes"
		}
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, g.ID, g.Title, replays)
	}

	printBoards()

	fmt.Println()
	fmt.Println("Run 'tilematch play' to start a level.")
}

func printBoards() {
	saved, err := boards.NewLoader(flagBoardsDir).LoadAll()
	if err != nil {
		fmt.Printf("\nCannot read saved boards: %v\n", err)
		return
	}
	if len(saved) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Saved boards:")
	fmt.Println()
	for _, b := range saved {
		fmt.Printf("  %-16s  level %-3d %-5s %3d tiles  seed %q\n", b.ID, b.Level, b.Tier, len(b.Tiles), b.Seed)
	}
}
