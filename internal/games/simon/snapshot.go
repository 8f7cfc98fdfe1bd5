package simon

import "github.com/vovakirdan/tui-simon/internal/round"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	round.Snapshot

	Tick      uint64
	Highlight int
	TooSmall  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Snapshot:  g.machine.Snapshot(),
		Tick:      g.tick,
		Highlight: g.highlighted(),
		TooSmall:  g.tooSmall,
	}
}
