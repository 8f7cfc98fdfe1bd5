// Package storage persists the high-score list of the memory game.
//
// Three backends share the Backend contract: a JSON file holding the top
// scores (the default), a SQLite database that additionally keeps a history
// of every finished game, and an in-memory store used when nothing can be
// written to disk.
package storage

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-simon/internal/round"
)

// TopN is how many scores the high-score list keeps.
const TopN = 3

// Backend names accepted by OpenBackend.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// DefaultJSONFile is the file name of the JSON backend.
const DefaultJSONFile = "simon_highscores.json"

// DefaultSQLitePath is where the SQLite backend lives unless told otherwise.
const DefaultSQLitePath = "~/.simon/scores.db"

// Backend is a score store that can be reset and closed.
type Backend interface {
	round.ScoreStore

	// Clear removes every persisted score.
	Clear() error

	// Close releases the underlying resources.
	Close() error
}

// StatsProvider is implemented by backends that keep per-game history.
type StatsProvider interface {
	Stats() (*Stats, error)
	RecentGames(limit int) ([]GameEntry, error)
}

// Rank sorts candidates in descending order and keeps the first TopN.
// The input is not modified and the result is never nil.
func Rank(candidates []int) []int {
	top := make([]int, len(candidates))
	copy(top, candidates)
	slices.SortFunc(top, func(a, b int) int {
		return cmp.Compare(b, a)
	})
	if len(top) > TopN {
		top = top[:TopN]
	}
	return top
}

// OpenBackend opens the named backend at path. An empty path selects the
// backend's default location.
func OpenBackend(kind, path string, logger *log.Logger) (Backend, error) {
	switch kind {
	case "", BackendJSON:
		if path == "" {
			path = DefaultJSONPath()
		}
		return OpenFile(path, logger)
	case BackendSQLite:
		if path == "" {
			path = DefaultSQLitePath
		}
		return Open(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", kind)
	}
}

// DefaultJSONPath returns the JSON score file next to the running executable,
// falling back to the working directory.
func DefaultJSONPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultJSONFile
	}
	return filepath.Join(filepath.Dir(exe), DefaultJSONFile)
}

// preparePath expands a leading ~ and creates the parent directories.
func preparePath(path string) (string, error) {
	// Expand ~ to home directory
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	// Create parent directories
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
