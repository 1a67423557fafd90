package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilematch/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show win rates per level",
	Long: `Display aggregate statistics from the run log: runs, wins, losses,
win rate, best score and average picks, per level and overall.`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	levels, err := store.Levels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	// Per-level rows, then the all-levels total.
	all := make([]*storage.RunStats, 0, len(levels)+1)
	for _, level := range append(levels, 0) {
		s, err := store.Stats(level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		all = append(all, s)
	}

	printStats(os.Stdout, all)
}

// printStats writes one row per stats entry. Level 0 is labelled "all".
func printStats(w io.Writer, stats []*storage.RunStats) {
	fmt.Fprintln(w, "Run statistics")
	fmt.Fprintln(w)

	if len(stats) == 0 || stats[len(stats)-1].Runs == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return
	}

	fmt.Fprintf(w, "  %-5s  %-5s  %-5s  %-6s  %-8s  %-6s  %s\n",
		"Level", "Runs", "Won", "Lost", "Win rate", "Best", "Avg picks")
	fmt.Fprintf(w, "  %-5s  %-5s  %-5s  %-6s  %-8s  %-6s  %s\n",
		"-----", "----", "---", "----", "--------", "----", "---------")

	for _, s := range stats {
		level := "all"
		if s.Level > 0 {
			level = fmt.Sprintf("%d", s.Level)
		}
		fmt.Fprintf(w, "  %-5s  %-5d  %-5d  %-6d  %-8s  %-6d  %.1f\n",
			level, s.Runs, s.Wins, s.Losses,
			fmt.Sprintf("%.0f%%", s.WinRate()*100), s.BestScore, s.AvgPicks)
	}

	last := stats[len(stats)-1].LastPlayed
	if !last.IsZero() {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Last played: %s\n", last.Format("2006-01-02 15:04"))
	}
}
