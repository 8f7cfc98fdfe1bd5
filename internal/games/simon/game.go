// Package simon drives a round.Machine from the platform tick loop and draws
// the board, status line and high scores onto a core.Screen.
package simon

import (
	"io"
	"iter"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/round"
)

// Game is the Simon memory game.
type Game struct {
	cfg     config.SimonConfig
	palette Palette
	store   round.ScoreStore
	logger  *log.Logger

	machine  *round.Machine
	tickRate int
	tick     uint64

	// Playback state
	nextCue  func() (round.Cue, bool)
	stopCue  func()
	cue      round.Cue
	cueTicks int

	// Click feedback
	flashTile  int
	flashTicks int

	// Screen dimensions
	screenW  int
	screenH  int
	layout   Layout
	tooSmall bool
}

// New creates a game using cfg for timing and colors. A nil store disables
// persistence; a nil logger discards log output.
func New(cfg config.SimonConfig, store round.ScoreStore, logger *log.Logger) (*Game, error) {
	palette, err := NewPalette(cfg.Board)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:       cfg,
		palette:   palette,
		store:     store,
		logger:    logger.WithPrefix("simon"),
		flashTile: round.NoTile,
		cue:       round.Cue{Tile: round.NoTile},
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "simon"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Simon Says - Color Memory"
}

// Reset starts a fresh game. High scores are reloaded from the store.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.stopPlayback()

	g.tickRate = core.ClampTickRate(cfg.TickRate)
	g.tick = 0
	g.flashTile = round.NoTile
	g.flashTicks = 0
	g.machine = round.New(
		rand.New(rand.NewSource(cfg.Seed)),
		g.store,
		round.WithTiming(g.cfg.Timing.Playback()),
		round.WithLogger(g.logger),
	)
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.logger.Debug("game reset", "seed", cfg.Seed, "tick_rate", g.tickRate)
}

// Resize recomputes the board layout. The round in progress is kept.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	layout, ok := NewLayout(width, height)
	g.layout = layout
	g.tooSmall = !ok
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.machine.Phase() {
	case round.PhaseShowing:
		// Input is not accepted while the sequence plays.
		g.advancePlayback()
	case round.PhasePlayerTurn:
		if tile, ok := g.selectedTile(input); ok {
			g.flash(tile)
			outcome := g.machine.SubmitClick(tile)
			g.logger.Debug("tile selected", "tile", tile, "outcome", outcome)
		}
	case round.PhaseGameOver:
		if input.Has(core.ActionRestart) {
			g.stopPlayback()
			g.machine.Restart()
		}
	}

	return core.StepResult{State: g.State()}
}

// advancePlayback shows the current cue for its duration and pulls the next
// one when it expires. When the sequence is exhausted the machine has moved
// on to the player's turn.
func (g *Game) advancePlayback() {
	if g.nextCue == nil {
		g.startPlayback(g.machine.BeginShowing())
		return
	}
	if g.cueTicks > 0 {
		g.cueTicks--
		if g.cueTicks > 0 {
			return
		}
	}
	g.pullCue()
}

func (g *Game) startPlayback(cues iter.Seq[round.Cue]) {
	g.nextCue, g.stopCue = iter.Pull(cues)
	g.pullCue()
}

// pullCue fetches cues until one lasts at least a tick.
func (g *Game) pullCue() {
	for {
		cue, ok := g.nextCue()
		if !ok {
			g.stopPlayback()
			return
		}
		g.cue = cue
		g.cueTicks = core.Ticks(cue.Duration, g.tickRate)
		if g.cueTicks > 0 {
			return
		}
	}
}

func (g *Game) stopPlayback() {
	if g.stopCue != nil {
		g.stopCue()
	}
	g.nextCue = nil
	g.stopCue = nil
	g.cue = round.Cue{Tile: round.NoTile}
	g.cueTicks = 0
}

// selectedTile resolves a key press or mouse click to a tile index.
func (g *Game) selectedTile(input core.InputFrame) (int, bool) {
	if tile, ok := input.Tile(); ok {
		return tile, true
	}
	if p, ok := input.Click(); ok {
		return g.layout.TileAt(p.X, p.Y)
	}
	return round.NoTile, false
}

func (g *Game) flash(tile int) {
	g.flashTile = tile
	g.flashTicks = core.Ticks(g.cfg.Timing.ClickFlash(), g.tickRate)
}

// highlighted returns the tile drawn in its lit color this frame.
func (g *Game) highlighted() int {
	if g.machine.Phase() == round.PhaseShowing && g.cue.Lit() {
		return g.cue.Tile
	}
	if g.flashTicks > 0 {
		return g.flashTile
	}
	return round.NoTile
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.machine.Score(),
		GameOver: g.machine.Phase() == round.PhaseGameOver,
		Paused:   g.tooSmall,
	}
}

// Machine exposes the underlying round state machine.
func (g *Game) Machine() *round.Machine {
	return g.machine
}
