package simon

import (
	"fmt"

	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/round"
)

// Status lines shown under the score.
const (
	StatusShowing  = "Watch the sequence..."
	StatusYourTurn = "Your turn"
	StatusLost     = "You lost! (Space to restart)"
	TopScoresTitle = "Top 3 scores:"
)

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst, g.highlighted())
}

// renderHUD draws score, status and, after a loss, the high score list.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.machine.Score()), core.ColorBrightWhite)

	highScores := g.machine.HighScores()
	if len(highScores) > 0 {
		best := fmt.Sprintf("Best: %d", highScores[0])
		dst.DrawTextColor(dst.Width()-len(best)-1, 0, best, core.ColorGray)
	}

	switch g.machine.Phase() {
	case round.PhaseShowing:
		dst.DrawTextCentered(1, StatusShowing, core.ColorYellow)
	case round.PhasePlayerTurn:
		dst.DrawTextCentered(1, StatusYourTurn, core.ColorBrightGreen)
	case round.PhaseGameOver:
		dst.DrawTextCentered(1, StatusLost, core.ColorBrightRed)
		dst.DrawTextColor(1, 2, TopScoresTitle, core.ColorBrightWhite)
		for i, score := range highScores {
			dst.DrawTextColor(3, 3+i, fmt.Sprintf("%d. %d", i+1, score), core.ColorWhite)
		}
	}

	dst.DrawHLine(0, hudHeight-1, dst.Width(), '─', core.ColorGray)
}

// renderBoard fills every tile with its base color, or its lit color when
// it is the highlighted tile, and labels it with its key.
func (g *Game) renderBoard(dst *core.Screen, highlight int) {
	for i, r := range g.layout.Tiles {
		color := g.palette.Base[i]
		if i == highlight {
			color = g.palette.Lit[i]
		}
		dst.FillRect(r, color)

		cx, cy := r.Center()
		dst.SetCell(cx, cy, core.Cell{
			Rune: rune('1' + i),
			Fg:   core.ColorBrightWhite,
			Bg:   color,
		})
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawBox(core.NewRect(0, 0, dst.Width(), dst.Height()), core.ColorGray)
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y, fmt.Sprintf("Need at least %dx%d", minWidth, MinHeight()), core.ColorGray)
}

// MinHeight is the smallest screen height that fits the board.
func MinHeight() int {
	return hudHeight + round.GridSize*minTileH + (round.GridSize-1)*tileGapY
}
