package round

import (
	"io"
	"iter"
	"slices"

	"github.com/charmbracelet/log"
)

// maxDraws bounds the rejection sampling loop of the growth rule.
const maxDraws = 64

// Machine owns one game session: the sequence, the player's progress through
// it, the score and the phase. It also caches the high-score list for display.
//
// A Machine is not safe for concurrent use.
type Machine struct {
	rng    Rand
	store  ScoreStore
	timing Timing
	logger *log.Logger

	sequence   []int
	progress   int
	score      int
	phase      Phase
	highScores []int

	// generation changes whenever the sequence is replaced or extended, so a
	// stale playback cannot end the showing phase of a newer sequence.
	generation uint64
}

// Option configures a Machine.
type Option func(*Machine)

// WithTiming overrides the playback delays.
func WithTiming(t Timing) Option {
	return func(m *Machine) {
		m.timing = t
	}
}

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a machine, loads the high-score list from store and starts a
// new game. A nil store disables persistence.
func New(rng Rand, store ScoreStore, opts ...Option) *Machine {
	m := &Machine{
		rng:    rng,
		store:  store,
		timing: DefaultTiming(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.highScores = m.loadHighScores()
	m.NewGame()
	return m
}

// loadHighScores reads the persisted list. Any failure yields an empty list.
func (m *Machine) loadHighScores() []int {
	if m.store == nil {
		return []int{}
	}
	scores, err := m.store.Load()
	if err != nil {
		m.logger.Warn("could not load high scores", "error", err)
		return []int{}
	}
	if scores == nil {
		return []int{}
	}
	return slices.Clone(scores)
}

// NewGame resets the session: a one-tile sequence, zero progress and score,
// and the showing phase.
func (m *Machine) NewGame() {
	m.sequence = []int{m.rng.Intn(TileCount)}
	m.progress = 0
	m.score = 0
	m.phase = PhaseShowing
	m.generation++

	m.logger.Debug("new game", "sequence", m.sequence)
}

// BeginShowing returns the playback of the current sequence: an unlit initial
// pause, then for each tile a lit cue followed by an unlit gap. When the
// consumer drains the playback, progress resets and the phase becomes
// PhasePlayerTurn. Outside PhaseShowing the playback is empty.
func (m *Machine) BeginShowing() iter.Seq[Cue] {
	if m.phase != PhaseShowing {
		return func(func(Cue) bool) {}
	}

	gen := m.generation
	tiles := slices.Clone(m.sequence)
	timing := m.timing

	return func(yield func(Cue) bool) {
		if !yield(Cue{Tile: NoTile, Duration: timing.InitialPause}) {
			return
		}
		for _, tile := range tiles {
			if !yield(Cue{Tile: tile, Duration: timing.Highlight}) {
				return
			}
			if !yield(Cue{Tile: NoTile, Duration: timing.Gap}) {
				return
			}
		}

		if m.generation != gen || m.phase != PhaseShowing {
			return
		}
		m.progress = 0
		m.phase = PhasePlayerTurn
	}
}

// SubmitClick checks tile against the next expected element of the sequence.
// Input outside PhasePlayerTurn, or for a tile off the board, is ignored.
func (m *Machine) SubmitClick(tile int) Outcome {
	if m.phase != PhasePlayerTurn || tile < 0 || tile >= TileCount {
		return OutcomeIgnored
	}

	if tile != m.sequence[m.progress] {
		m.gameOver()
		return OutcomeGameOver
	}

	m.progress++
	if m.progress < len(m.sequence) {
		return OutcomeProgress
	}

	// Round complete
	m.score++
	m.extend()
	m.progress = 0
	m.phase = PhaseShowing
	return OutcomeRoundComplete
}

// Restart starts a new game. It only acts in PhaseGameOver and reports
// whether it did.
func (m *Machine) Restart() bool {
	if m.phase != PhaseGameOver {
		return false
	}
	m.NewGame()
	return true
}

// gameOver ends the session and merges the score into the high-score list.
// A failed save leaves the cached list unchanged.
func (m *Machine) gameOver() {
	m.phase = PhaseGameOver
	m.logger.Info("game over", "score", m.score, "length", len(m.sequence))

	if m.store == nil {
		return
	}

	candidates := append(slices.Clone(m.highScores), m.score)
	top, err := m.store.Save(candidates)
	if err != nil {
		m.logger.Warn("could not save high scores", "error", err)
	} else {
		m.highScores = slices.Clone(top)
	}

	if rec, ok := m.store.(GameRecorder); ok {
		if err := rec.RecordGame(m.score); err != nil {
			m.logger.Warn("could not record game", "error", err)
		}
	}
}

// extend appends one tile chosen by the growth rule.
func (m *Machine) extend() {
	m.sequence = append(m.sequence, m.nextTile())
	m.generation++

	m.logger.Debug("sequence extended", "sequence", m.sequence)
}

// nextTile draws a tile uniformly, rejecting tiles already used MaxRepeats
// times. After maxDraws rejections it picks uniformly among the eligible
// tiles, which has the same distribution. If no tile is eligible the cap is
// relaxed to the least-used tiles.
func (m *Machine) nextTile() int {
	counts := m.counts()

	for range maxDraws {
		tile := m.rng.Intn(TileCount)
		if counts[tile] < MaxRepeats {
			return tile
		}
	}

	candidates := make([]int, 0, TileCount)
	for tile, n := range counts {
		if n < MaxRepeats {
			candidates = append(candidates, tile)
		}
	}

	if len(candidates) == 0 {
		fewest := slices.Min(counts[:])
		for tile, n := range counts {
			if n == fewest {
				candidates = append(candidates, tile)
			}
		}
		m.logger.Warn("every tile reached the repeat cap", "length", len(m.sequence))
	}

	return candidates[m.rng.Intn(len(candidates))]
}

// counts returns how many times each tile occurs in the sequence.
func (m *Machine) counts() [TileCount]int {
	var counts [TileCount]int
	for _, tile := range m.sequence {
		counts[tile]++
	}
	return counts
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Sequence returns a copy of the current sequence.
func (m *Machine) Sequence() []int {
	return slices.Clone(m.sequence)
}

// Progress returns how many tiles of the sequence the player has repeated
// correctly in the current attempt.
func (m *Machine) Progress() int {
	return m.progress
}

// Score returns the number of rounds completed in this game.
func (m *Machine) Score() int {
	return m.score
}

// HighScores returns a copy of the cached high-score list.
func (m *Machine) HighScores() []int {
	return slices.Clone(m.highScores)
}

// Snapshot returns the current machine state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Phase:      m.phase,
		Sequence:   m.Sequence(),
		Progress:   m.progress,
		Score:      m.score,
		HighScores: m.HighScores(),
	}
}
