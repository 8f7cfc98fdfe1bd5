package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top 3 scores",
	Long: `Display the persisted top 3 scores.

With the sqlite backend, aggregate statistics over every recorded game are
shown as well.

Examples:
  simon scores
  simon scores --backend sqlite
  simon scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Remove all stored scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLog, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg.Scores, logger)
	if err != nil {
		return fmt.Errorf("opening scores: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClear {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Fprintln(out, "High scores cleared.")
		return nil
	}

	return printScores(out, store)
}

// printScores writes the top list and, when available, aggregate stats.
func printScores(out io.Writer, store storage.Backend) error {
	scores, err := store.Load()
	if err != nil {
		return fmt.Errorf("reading scores: %w", err)
	}

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'simon' to set the first high score!")
	} else {
		fmt.Fprintln(out, "Top 3 scores:")
		for i, score := range scores {
			fmt.Fprintf(out, "  %d. %d\n", i+1, score)
		}
	}

	sp, ok := store.(storage.StatsProvider)
	if !ok {
		return nil
	}
	stats, err := sp.Stats()
	if err != nil {
		return fmt.Errorf("reading stats: %w", err)
	}
	if stats.GamesCount == 0 {
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games played: %d\n", stats.GamesCount)
	fmt.Fprintf(out, "Average:      %.1f\n", stats.AvgScore)
	fmt.Fprintf(out, "Total score:  %d\n", stats.TotalScore)
	fmt.Fprintf(out, "Last played:  %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	return nil
}
