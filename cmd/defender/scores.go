package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/galactic-defender/internal/platform/tui"
	"github.com/vovakirdan/galactic-defender/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the highest scoring runs recorded in the database.

Examples:
  defender scores
  defender scores --limit 25
  defender scores --db ./defender.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse run history interactively",
	Long: `Open an interactive table of the best and the most recent runs.
Tab switches between the two views.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	return printScores(cmd.OutOrStdout(), store, flagLimit)
}

// printScores writes the top runs as a plain table.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	runs, err := store.TopRuns(limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintln(w, "High Scores - Galactic Defender")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'defender play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-4s  %-6s  %-10s  %s\n", "Rank", "Score", "Wave", "Coins", "Difficulty", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-4s  %-6s  %-10s  %s\n", "----", "-----", "----", "-----", "----------", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-8d  %-4d  %-6d  %-10s  %s\n",
			i+1, r.Score, r.Wave, r.Coins, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	if count, err := store.RunCount(); err == nil {
		fmt.Fprintf(w, "Best: %d over %d runs\n", runs[0].Score, count)
	}
	return nil
}

func runBoard(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	return tui.RunScoreboard(store, width, height)
}
