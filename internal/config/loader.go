package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-simon/internal/round"
)

// LoadSimon loads the game configuration, applies SIMON_* environment
// overrides and validates the result.
// Search order: customPath -> ~/.simon/simon.yaml -> ./configs/simon.yaml -> embedded default
func LoadSimon(customPath string) (SimonConfig, error) {
	cfg, err := readSimon(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// readSimon resolves the YAML source without overrides. The chosen file is
// laid over the embedded defaults, so keys it omits keep their default value.
func readSimon(customPath string) (SimonConfig, error) {
	base := embeddedSimon()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := overlay(base, data)
		if err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("simon.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := overlay(base, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/simon.yaml"); err == nil {
		if cfg, err := overlay(base, data); err == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// embeddedSimon decodes the embedded default YAML.
func embeddedSimon() SimonConfig {
	var cfg SimonConfig
	if err := yaml.Unmarshal(defaultSimonYAML, &cfg); err != nil {
		return DefaultSimonConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// overlay decodes data on top of a copy of base.
func overlay(base SimonConfig, data []byte) (SimonConfig, error) {
	cfg := base
	cfg.Board.Colors = slices.Clone(base.Board.Colors)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// ParseEnv loads configuration overrides from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the configuration can drive a game.
func (c SimonConfig) Validate() error {
	var errs []error

	t := c.Timing
	if t.InitialPauseMS < 0 || t.GapMS < 0 || t.ClickFlashMS < 0 {
		errs = append(errs, errors.New("timing: durations must not be negative"))
	}
	if t.HighlightMS <= 0 {
		errs = append(errs, errors.New("timing: highlight_ms must be positive"))
	}

	if len(c.Board.Colors) != round.TileCount {
		errs = append(errs, fmt.Errorf("board: need %d colors, got %d", round.TileCount, len(c.Board.Colors)))
	}
	for i, hex := range c.Board.Colors {
		if _, err := colorful.Hex(hex); err != nil {
			errs = append(errs, fmt.Errorf("board: color %d %q: %w", i, hex, err))
		}
	}
	if c.Board.HighlightFactor < 1 {
		errs = append(errs, errors.New("board: highlight_factor must be at least 1"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c SimonConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".simon", filename)
}
