package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Attempt is one submitted quiz attempt. Name is empty when the player
// declined to save a score record.
type Attempt struct {
	ID         string    `json:"id"`
	RecordedAt time.Time `json:"recorded_at"`
	Name       string    `json:"name,omitempty"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percent    float64   `json:"percent"`
}

// NewAttempt stamps an attempt with a fresh id and the current UTC time.
func NewAttempt(name string, score, total int, percent float64) Attempt {
	return Attempt{
		ID:         uuid.NewString(),
		RecordedAt: time.Now().UTC(),
		Name:       name,
		Score:      score,
		Total:      total,
		Percent:    percent,
	}
}

// Store appends attempts to a pretty-printed JSON file.
type Store struct {
	path string
}

// NewStore creates a store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads all recorded attempts, oldest first. A missing or unparsable
// file yields an empty history.
func (s *Store) Load() ([]Attempt, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}
	var attempts []Attempt
	if err := json.Unmarshal(data, &attempts); err != nil {
		// Corrupt history degrades to empty, same as the leaderboard.
		return nil, nil
	}
	return attempts, nil
}

// Append records an attempt and rewrites the file in full.
func (s *Store) Append(attempt Attempt) error {
	attempts, err := s.Load()
	if err != nil {
		return err
	}
	attempts = append(attempts, attempt)
	payload, err := json.MarshalIndent(attempts, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, payload, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
