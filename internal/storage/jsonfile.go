package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// FileStore keeps the high-score list as a JSON array of integers in a
// single file.
type FileStore struct {
	path   string
	mu     sync.Mutex
	logger *log.Logger
}

// OpenFile prepares a file store at path. The file itself is created on the
// first Save. A nil logger discards log output.
func OpenFile(path string, logger *log.Logger) (*FileStore, error) {
	resolved, err := preparePath(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: resolved, logger: logger}, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored list. A missing, empty or malformed file yields an
// empty list and no error; other read failures yield an empty list and the
// error.
func (s *FileStore) Load() ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []int{}, nil
	}
	if err != nil {
		return []int{}, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	var scores []int
	if err := json.Unmarshal(data, &scores); err != nil {
		s.logger.Debug("ignoring malformed score file", "path", s.path, "error", err)
		return []int{}, nil
	}
	if scores == nil {
		return []int{}, nil
	}
	return scores, nil
}

// Save ranks candidates, writes the top TopN to the file and returns them.
func (s *FileStore) Save(candidates []int) ([]int, error) {
	top := Rank(candidates)

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(top)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot encode scores: %w", err)
	}
	if err := s.write(data); err != nil {
		return nil, err
	}
	return top, nil
}

// Clear removes the score file.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: cannot remove %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op; the file is only open while reading or writing.
func (s *FileStore) Close() error {
	return nil
}

// write replaces the file atomically through a temp file in the same directory.
func (s *FileStore) write(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".simon-scores-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot replace %s: %w", s.path, err)
	}
	return nil
}
