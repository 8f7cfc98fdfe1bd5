package storage

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreLoadEmpty(t *testing.T) {
	store := openTestStore(t)

	scores, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if scores == nil || len(scores) != 0 {
		t.Errorf("Expected empty non-nil list, got %v", scores)
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	top, err := store.Save([]int{5, 3, 9, 1})
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if !slices.Equal(top, []int{9, 5, 3}) {
		t.Errorf("Save() = %v, expected [9 5 3]", top)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !slices.Equal(loaded, []int{9, 5, 3}) {
		t.Errorf("Load() = %v, expected [9 5 3]", loaded)
	}

	// A shorter list replaces the previous one entirely
	if _, err := store.Save([]int{4}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	loaded, _ = store.Load()
	if !slices.Equal(loaded, []int{4}) {
		t.Errorf("Load() after second save = %v, expected [4]", loaded)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Save([]int{2, 7})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	loaded, _ := store.Load()
	if !slices.Equal(loaded, []int{7, 2}) {
		t.Errorf("Load() after reopen = %v, expected [7 2]", loaded)
	}
}

func TestStoreRecordGameAndStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	for _, score := range []int{3, 0, 6} {
		if err := store.RecordGame(score); err != nil {
			t.Fatalf("RecordGame() failed: %v", err)
		}
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", stats.GamesCount)
	}
	if stats.HighScore != 6 {
		t.Errorf("HighScore = %d, expected 6", stats.HighScore)
	}
	if stats.TotalScore != 9 {
		t.Errorf("TotalScore = %d, expected 9", stats.TotalScore)
	}
	if stats.AvgScore != 3 {
		t.Errorf("AvgScore = %f, expected 3", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreRecentGames(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.RecordGame(i * 10)
	}

	games, err := store.RecentGames(3)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("Expected 3 games with limit, got %d", len(games))
	}

	// Newest first: 40, 30, 20
	if games[0].Score != 40 || games[1].Score != 30 || games[2].Score != 20 {
		t.Errorf("Games not in expected order: %v", games)
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.Save([]int{1, 2, 3})
	store.RecordGame(3)

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	loaded, _ := store.Load()
	if len(loaded) != 0 {
		t.Errorf("Expected no high scores after clear, got %v", loaded)
	}
	games, _ := store.RecentGames(10)
	if len(games) != 0 {
		t.Errorf("Expected no games after clear, got %d", len(games))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
