package storage

import (
	"slices"
	"sync"
)

// MemoryStore keeps the high-score list in memory only.
// State is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	scores []int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: []int{}}
}

// Load returns a copy of the current list.
func (m *MemoryStore) Load() ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.scores), nil
}

// Save ranks candidates and keeps the top TopN.
func (m *MemoryStore) Save(candidates []int) ([]int, error) {
	top := Rank(candidates)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = slices.Clone(top)
	return top, nil
}

// Clear empties the list.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = []int{}
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
