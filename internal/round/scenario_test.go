package round

import (
	"slices"
	"testing"
)

func TestScenarioFirstRound(t *testing.T) {
	m := newSeeded(2024, &fakeStore{})

	seq := m.Sequence()
	if len(seq) != 1 {
		t.Fatalf("sequence = %v, want one tile", seq)
	}
	k := seq[0]

	drain(m)
	if m.Phase() != PhasePlayerTurn {
		t.Fatalf("phase = %v, want player_turn", m.Phase())
	}

	m.SubmitClick(k)

	if m.Score() != 1 || len(m.Sequence()) != 2 || m.Phase() != PhaseShowing {
		t.Errorf("after first round: %+v", m.Snapshot())
	}
	if m.Sequence()[0] != k {
		t.Errorf("sequence prefix changed: %v", m.Sequence())
	}
}

func TestScenarioImmediateMiss(t *testing.T) {
	tests := []struct {
		name     string
		previous []int
		want     []int
	}{
		{"empty list", nil, []int{0}},
		{"room in top three", []int{5, 2}, []int{5, 2, 0}},
		{"zero pushed out", []int{7, 6, 5}, []int{7, 6, 5}},
		{"tie at zero", []int{4, 0}, []int{4, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{stored: tc.previous}
			m := newSeeded(31, store)
			drain(m)

			m.SubmitClick(wrongTile(m.Sequence()[0]))

			if m.Phase() != PhaseGameOver || m.Score() != 0 {
				t.Fatalf("after miss: %+v", m.Snapshot())
			}
			if len(store.saves) != 1 {
				t.Fatalf("Save called %d times, want 1", len(store.saves))
			}
			if !slices.Equal(m.HighScores(), tc.want) {
				t.Errorf("high scores = %v, want %v", m.HighScores(), tc.want)
			}
		})
	}
}

func TestScenarioSecondGameUsesMergedList(t *testing.T) {
	store := &fakeStore{}
	m := newSeeded(5, store)

	replay(t, m)
	drain(m)
	m.SubmitClick(wrongTile(m.Sequence()[0]))
	m.Restart()

	drain(m)
	m.SubmitClick(wrongTile(m.Sequence()[0]))

	if len(store.saves) != 2 {
		t.Fatalf("Save called %d times, want 2", len(store.saves))
	}
	if !slices.Equal(store.saves[1], []int{1, 0}) {
		t.Errorf("second Save candidates = %v, want [1 0]", store.saves[1])
	}
	if !slices.Equal(m.HighScores(), []int{1, 0}) {
		t.Errorf("high scores = %v, want [1 0]", m.HighScores())
	}
}
