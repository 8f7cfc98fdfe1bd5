package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-simon/internal/platform/tui"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded games",
	Long: `Show every recorded game in a scrollable table.

Only the sqlite backend records individual games.

Examples:
  simon history --backend sqlite`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(_ *cobra.Command, _ []string) error {
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

	sp, ok := store.(storage.StatsProvider)
	if !ok {
		return errors.New("history needs the sqlite backend (use --backend sqlite)")
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunHistory(sp, width, height)
}
