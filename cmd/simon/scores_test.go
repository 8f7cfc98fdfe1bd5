package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-simon/internal/storage"
)

func TestPrintScoresEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := printScores(&out, storage.NewMemoryStore()); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if !strings.Contains(out.String(), "No scores recorded yet.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestPrintScoresTopList(t *testing.T) {
	store := storage.NewMemoryStore()
	if _, err := store.Save([]int{4, 9, 1, 7}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var out bytes.Buffer
	if err := printScores(&out, store); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	want := "Top 3 scores:\n  1. 9\n  2. 7\n  3. 4\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestPrintScoresStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for _, score := range []int{2, 4} {
		if err := store.RecordGame(score); err != nil {
			t.Fatalf("RecordGame: %v", err)
		}
	}
	if _, err := store.Save([]int{4, 2}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var out bytes.Buffer
	if err := printScores(&out, store); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	for _, want := range []string{"1. 4", "Games played: 2", "Average:      3.0", "Total score:  6"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestNewLoggerDiscardsWithoutPath(t *testing.T) {
	logger, closeLog, err := newLogger("", "debug")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	defer closeLog()
	logger.Info("dropped")

	if _, _, err := newLogger(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Error("expected error for invalid level")
	}
}
