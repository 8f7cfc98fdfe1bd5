package simon

import (
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/round"
)

const (
	hudHeight = 7 // score, status, top-3 list and separator
	tileGapX  = 2
	tileGapY  = 1
	minTileH  = 2
	minWidth  = 32 // widest status line plus margins
)

// Layout is the immutable board geometry for one screen size.
type Layout struct {
	Tiles [round.TileCount]core.Rect
	Board core.Rect
}

// NewLayout fits the 3x3 board below the HUD. Tiles are twice as wide as
// they are tall so they look square in a terminal. It reports false when
// the screen is too small to play.
func NewLayout(width, height int) (Layout, bool) {
	var l Layout
	if width < minWidth {
		return l, false
	}

	availW := width
	availH := height - hudHeight
	tileH := min(
		(availH-(round.GridSize-1)*tileGapY)/round.GridSize,
		(availW-(round.GridSize-1)*tileGapX)/round.GridSize/2,
	)
	if tileH < minTileH {
		return l, false
	}
	tileW := tileH * 2

	boardW := round.GridSize*tileW + (round.GridSize-1)*tileGapX
	boardH := round.GridSize*tileH + (round.GridSize-1)*tileGapY
	boardX := (width - boardW) / 2
	boardY := hudHeight

	l.Board = core.NewRect(boardX, boardY, boardW, boardH)
	for i := range l.Tiles {
		row, col := i/round.GridSize, i%round.GridSize
		l.Tiles[i] = core.NewRect(
			boardX+col*(tileW+tileGapX),
			boardY+row*(tileH+tileGapY),
			tileW,
			tileH,
		)
	}
	return l, true
}

// TileAt returns the index of the tile containing screen cell (x, y).
func (l Layout) TileAt(x, y int) (int, bool) {
	if !l.Board.Contains(x, y) {
		return round.NoTile, false
	}
	for i, r := range l.Tiles {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return round.NoTile, false
}
