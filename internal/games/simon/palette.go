package simon

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/round"
)

// Palette holds the base and lit color of every tile.
type Palette struct {
	Base [round.TileCount]core.Color
	Lit  [round.TileCount]core.Color
}

// NewPalette builds the tile colors from the board configuration.
func NewPalette(cfg config.BoardConfig) (Palette, error) {
	var p Palette
	if len(cfg.Colors) != round.TileCount {
		return p, fmt.Errorf("simon: need %d tile colors, got %d", round.TileCount, len(cfg.Colors))
	}

	for i, hex := range cfg.Colors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return p, fmt.Errorf("simon: tile %d color %q: %w", i, hex, err)
		}
		p.Base[i] = core.Color(c.Hex())
		p.Lit[i] = core.Color(Lighten(c, cfg.HighlightFactor).Hex())
	}
	return p, nil
}

// Lighten multiplies each RGB channel by factor, saturating at full intensity.
func Lighten(c colorful.Color, factor float64) colorful.Color {
	return colorful.Color{
		R: min(c.R*factor, 1),
		G: min(c.G*factor, 1),
		B: min(c.B*factor, 1),
	}
}
