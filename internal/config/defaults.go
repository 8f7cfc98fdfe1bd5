package config

import (
	_ "embed"
)

//go:embed defaults/simon.yaml
var defaultSimonYAML []byte

// DefaultSimonConfig returns the default game configuration.
func DefaultSimonConfig() SimonConfig {
	return SimonConfig{
		Timing: TimingConfig{
			InitialPauseMS: 400,
			HighlightMS:    600,
			GapMS:          400,
			ClickFlashMS:   150,
		},
		Board: BoardConfig{
			Colors: []string{
				"#c80000", "#00b400", "#0000c8",
				"#dc7800", "#7800b4", "#00b4b4",
				"#dcdc00", "#c80078", "#007878",
			},
			HighlightFactor: 1.4,
		},
		Scores: ScoresConfig{
			Backend: "json",
		},
	}
}
