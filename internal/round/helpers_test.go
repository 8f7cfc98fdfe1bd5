package round

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

// scriptedRand returns the scripted draws in order, then repeats the last one.
type scriptedRand struct {
	draws []int
	next  int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.draws) == 0 {
		return 0
	}
	i := min(r.next, len(r.draws)-1)
	r.next++
	return r.draws[i] % n
}

// fakeStore is an in-memory ScoreStore that records every Save call.
type fakeStore struct {
	stored   []int
	loadErr  error
	saveErr  error
	loads    int
	saves    [][]int
	recorded []int
}

func (s *fakeStore) Load() ([]int, error) {
	s.loads++
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return slices.Clone(s.stored), nil
}

func (s *fakeStore) Save(candidates []int) ([]int, error) {
	s.saves = append(s.saves, slices.Clone(candidates))
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	top := slices.Clone(candidates)
	slices.SortFunc(top, func(a, b int) int { return b - a })
	if len(top) > 3 {
		top = top[:3]
	}
	s.stored = top
	return slices.Clone(top), nil
}

// recordingStore additionally implements GameRecorder.
type recordingStore struct {
	fakeStore
	recordErr error
}

func (s *recordingStore) RecordGame(score int) error {
	s.recorded = append(s.recorded, score)
	return s.recordErr
}

var errDisk = errors.New("disk full")

// drain consumes a whole playback and returns its cues.
func drain(m *Machine) []Cue {
	var cues []Cue
	for c := range m.BeginShowing() {
		cues = append(cues, c)
	}
	return cues
}

// replay shows the sequence and then repeats it correctly.
func replay(t *testing.T, m *Machine) {
	t.Helper()
	drain(m)
	if m.Phase() != PhasePlayerTurn {
		t.Fatalf("Expected player turn after playback, got %v", m.Phase())
	}
	for _, tile := range m.Sequence() {
		if out := m.SubmitClick(tile); out == OutcomeIgnored || out == OutcomeGameOver {
			t.Fatalf("Correct tile %d gave outcome %v", tile, out)
		}
	}
}

// wrongTile returns a tile different from want.
func wrongTile(want int) int {
	return (want + 1) % TileCount
}

func newSeeded(seed int64, store ScoreStore) *Machine {
	return New(rand.New(rand.NewSource(seed)), store)
}
