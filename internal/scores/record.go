package scores

import (
	"slices"
	"strings"
)

// Record is one saved leaderboard entry.
type Record struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Total int    `json:"total"`
}

const (
	// MaxEntries bounds the persisted leaderboard.
	MaxEntries = 10
	// MaxNameLength caps a saved player name.
	MaxNameLength = 20
)

// NormalizeName trims a name and caps it at MaxNameLength characters. An
// empty result means the save should be skipped.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	runes := []rune(name)
	if len(runes) > MaxNameLength {
		return string(runes[:MaxNameLength])
	}
	return name
}

// Merge appends a record to a board, restores the (score desc, total desc)
// order, and truncates to MaxEntries. The sort is stable, so ties keep
// insertion order.
func Merge(board []Record, record Record) []Record {
	merged := make([]Record, 0, len(board)+1)
	merged = append(merged, board...)
	merged = append(merged, record)
	slices.SortStableFunc(merged, func(a, b Record) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return b.Total - a.Total
	})
	if len(merged) > MaxEntries {
		merged = merged[:MaxEntries]
	}
	return merged
}

// Rank returns the 1-based position of a record on a board, or 0 when the
// record did not make the board.
func Rank(board []Record, record Record) int {
	for i, entry := range board {
		if entry == record {
			return i + 1
		}
	}
	return 0
}
