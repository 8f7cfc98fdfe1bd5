package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

// newLogger writes to path, or discards everything when path is empty.
// The returned func closes the log file.
func newLogger(path, level string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
	})
	return logger, func() { f.Close() }, nil
}

// loadConfig reads the configuration and applies the score flags on top.
func loadConfig() (config.SimonConfig, error) {
	cfg, err := config.LoadSimon(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagBackend != "" {
		cfg.Scores.Backend = flagBackend
	}
	if flagScores != "" {
		cfg.Scores.Path = flagScores
	}
	return cfg, nil
}

// openStore opens the configured score backend.
func openStore(cfg config.ScoresConfig, logger *log.Logger) (storage.Backend, error) {
	return storage.OpenBackend(cfg.Backend, cfg.Path, logger.WithPrefix("scores"))
}

// validateFPS rejects tick rates the simulation cannot run at.
func validateFPS(fps int) error {
	if fps < 1 || fps > core.MaxTickRate {
		return fmt.Errorf("--fps must be between 1 and %d, got %d", core.MaxTickRate, fps)
	}
	return nil
}
