package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/games/simon"
	"github.com/vovakirdan/tui-simon/internal/platform/tui"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

func runPlay(_ *cobra.Command, _ []string) error {
	if err := validateFPS(flagFPS); err != nil {
		return err
	}

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
		// Play on without persistence.
		logger.Warn("score store unavailable, scores will not persist", "backend", cfg.Scores.Backend, "err", err)
		store = storage.NewMemoryStore()
	}
	defer store.Close()

	game, err := simon.New(cfg, store, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	return tui.Run(game, rc, logger)
}
