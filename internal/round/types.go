// Package round implements the round state machine of the memory game: the
// growing tile sequence, validation of the player's replay against it, the
// score, and the transitions between showing, player turn and game over.
//
// The machine is pure. It never sleeps or draws; showing the sequence is
// expressed as a lazy sequence of timed cues that a display consumes.
package round

import "time"

const (
	// GridSize is the number of tiles per row and column.
	GridSize = 3

	// TileCount is the number of tiles on the board. Tiles are indexed
	// row-major: index = row*GridSize + col.
	TileCount = GridSize * GridSize

	// MaxRepeats is how many times a single tile may appear in a sequence.
	MaxRepeats = 2

	// NoTile marks a cue during which no tile is lit.
	NoTile = -1
)

// Phase is the current stage of gameplay.
type Phase int

const (
	PhaseShowing    Phase = iota // sequence is being played back, input ignored
	PhasePlayerTurn              // waiting for the player to repeat the sequence
	PhaseGameOver                // terminal until Restart
)

// String returns the phase name used in logs and snapshots.
func (p Phase) String() string {
	switch p {
	case PhaseShowing:
		return "showing"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome describes what a SubmitClick did.
type Outcome int

const (
	OutcomeIgnored       Outcome = iota // wrong phase or tile out of range
	OutcomeProgress                     // correct tile, round continues
	OutcomeRoundComplete                // correct final tile, sequence grew
	OutcomeGameOver                     // wrong tile
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeProgress:
		return "progress"
	case OutcomeRoundComplete:
		return "round_complete"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cue is one timed display instruction of a sequence playback:
// light Tile (or nothing, for NoTile) for Duration.
type Cue struct {
	Tile     int
	Duration time.Duration
}

// Lit reports whether the cue highlights a tile.
func (c Cue) Lit() bool {
	return c.Tile != NoTile
}

// Timing holds the fixed delays of a sequence playback.
type Timing struct {
	InitialPause time.Duration // unlit pause before the first tile
	Highlight    time.Duration // how long each tile stays lit
	Gap          time.Duration // unlit pause after each tile
}

// DefaultTiming returns the classic playback delays.
func DefaultTiming() Timing {
	return Timing{
		InitialPause: 400 * time.Millisecond,
		Highlight:    600 * time.Millisecond,
		Gap:          400 * time.Millisecond,
	}
}

// Rand is the source of randomness for tile draws.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// ScoreStore persists the high-score list.
type ScoreStore interface {
	// Load returns the persisted high scores, possibly empty.
	Load() ([]int, error)

	// Save ranks candidates, persists the top entries and returns them.
	Save(candidates []int) ([]int, error)
}

// GameRecorder is implemented by stores that keep a history of every
// finished game in addition to the high-score list.
type GameRecorder interface {
	RecordGame(score int) error
}

// Snapshot captures the complete machine state for determinism testing.
type Snapshot struct {
	Phase      Phase
	Sequence   []int
	Progress   int
	Score      int
	HighScores []int
}
