package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilematch/internal/storage"
)

var (
	flagHistoryLevel int
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display the most recent finished runs, newest first.

With --level, shows the best won runs of that level instead.

Examples:
  tilematch history
  tilematch history --limit 50
  tilematch history --level 2
  tilematch history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLevel, "level", 0, "Show the best won runs of this level")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of runs")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete every recorded run")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	var runs []storage.RunRecord
	title := "Recent runs"
	if flagHistoryLevel > 0 {
		title = fmt.Sprintf("Best runs - level %d", flagHistoryLevel)
		runs, err = store.BestRuns(flagHistoryLevel, flagHistoryLimit)
	} else {
		runs, err = store.RecentRuns(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	printRuns(os.Stdout, title, runs)
}

// printRuns writes a run table.
func printRuns(w io.Writer, title string, runs []storage.RunRecord) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'tilematch play' to record the first one!")
		return
	}

	fmt.Fprintf(w, "  %-16s  %-5s  %-6s  %-6s  %-5s  %-5s  %-6s  %s\n",
		"Date", "Level", "Result", "Score", "Picks", "Tools", "Time", "Seed")
	fmt.Fprintf(w, "  %-16s  %-5s  %-6s  %-6s  %-5s  %-5s  %-6s  %s\n",
		"----", "-----", "------", "-----", "-----", "-----", "----", "----")

	for _, r := range runs {
		fmt.Fprintf(w, "  %-16s  %-5d  %-6s  %-6d  %-5d  %-5d  %-6s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Level, r.Status, r.Score,
			r.Picks, r.ToolsUsed, formatSecs(r.DurationSecs), r.Seed)
	}
}

func formatSecs(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
