package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/adventure-clicker/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs and overall statistics.

Examples:
  clicker scores
  clicker scores --limit 20
  clicker scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			return
		}
		fmt.Println("Run history cleared.")
		return
	}

	if err := writeScores(os.Stdout, store, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
	}
}

// writeScores prints the best runs and overall statistics.
func writeScores(w io.Writer, store *storage.Store, limit int) error {
	runs, err := store.TopRuns(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Best Runs - Adventure Clicker")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'clicker play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Nuggets", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %s\n", "----", "-----", "-------", "----")

	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-8d  %-8d  %s\n", i+1, run.Score, run.Nuggets, dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Runs: %d  Average: %.1f  Gold nuggets: %d\n",
		stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalNuggets)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(w, "Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
