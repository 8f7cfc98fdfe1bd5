// Package config provides YAML-based configuration loading for the game,
// with embedded defaults and environment overrides.
package config

import (
	"time"

	"github.com/vovakirdan/tui-simon/internal/round"
)

// SimonConfig contains all configuration for the memory game.
type SimonConfig struct {
	Timing TimingConfig `yaml:"timing"`
	Board  BoardConfig  `yaml:"board"`
	Scores ScoresConfig `yaml:"scores"`
}

// TimingConfig defines the fixed delays of the game, in milliseconds.
type TimingConfig struct {
	InitialPauseMS int `yaml:"initial_pause_ms" env:"SIMON_INITIAL_PAUSE_MS"`
	HighlightMS    int `yaml:"highlight_ms" env:"SIMON_HIGHLIGHT_MS"`
	GapMS          int `yaml:"gap_ms" env:"SIMON_GAP_MS"`
	ClickFlashMS   int `yaml:"click_flash_ms" env:"SIMON_CLICK_FLASH_MS"`
}

// BoardConfig defines the tile palette.
type BoardConfig struct {
	Colors          []string `yaml:"colors" env:"SIMON_TILE_COLORS" envSeparator:","`
	HighlightFactor float64  `yaml:"highlight_factor" env:"SIMON_HIGHLIGHT_FACTOR"`
}

// ScoresConfig selects the high-score backend.
type ScoresConfig struct {
	Backend string `yaml:"backend" env:"SIMON_SCORES_BACKEND"`
	Path    string `yaml:"path" env:"SIMON_SCORES_PATH"`
}

// Playback returns the sequence playback delays.
func (t TimingConfig) Playback() round.Timing {
	return round.Timing{
		InitialPause: ms(t.InitialPauseMS),
		Highlight:    ms(t.HighlightMS),
		Gap:          ms(t.GapMS),
	}
}

// ClickFlash returns how long a clicked tile stays lit.
func (t TimingConfig) ClickFlash() time.Duration {
	return ms(t.ClickFlashMS)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
