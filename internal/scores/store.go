package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCorrupt reports that the leaderboard file exists but could not be
// parsed. Callers treat it as an empty board; the content is overwritten in
// full on the next save.
var ErrCorrupt = errors.New("leaderboard file is corrupt")

// Store persists the leaderboard as a pretty-printed JSON array.
type Store struct {
	path string
}

// NewStore creates a store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted leaderboard. A missing file yields an empty
// board with no error; unparsable content yields an empty board and
// ErrCorrupt so callers can tell the two apart.
func (s *Store) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	var board []Record
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return board, nil
}

// Save merges a record into the stored board and rewrites the file in full.
// A corrupt existing file is treated as empty. Returns the board as stored.
func (s *Store) Save(record Record) ([]Record, error) {
	board, err := s.Load()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return nil, err
	}
	board = Merge(board, record)
	if err := s.write(board); err != nil {
		return nil, err
	}
	return board, nil
}

// write persists a board using a temp file and an atomic rename.
func (s *Store) write(board []Record) error {
	payload, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmpPath := s.path + ".tmp"
	file, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	_, writeErr := file.Write(payload)
	syncErr := file.Sync()
	closeErr := file.Close()
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return writeErr
	}
	if syncErr != nil {
		_ = os.Remove(tmpPath)
		return syncErr
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return closeErr
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
