package question

import (
	"errors"
	"strings"
	"testing"
)

// TestNormalizeDeckCollectsIssues verifies all problems are reported at once.
func TestNormalizeDeckCollectsIssues(t *testing.T) {
	deck := Deck{
		Version: 1,
		Questions: []Question{
			{Text: "", Options: []string{"only one"}, Correct: 3},
			{Text: "ok", Options: []string{"a", "b"}, Correct: 1},
		},
	}
	_, err := NormalizeDeck(deck)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(validationErr.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %d: %v", len(validationErr.Issues), err)
	}
	if !strings.Contains(err.Error(), "questions[0].correct") {
		t.Fatalf("expected field-addressed message, got %q", err.Error())
	}
}

// TestNormalizeDeckVersion verifies version handling.
func TestNormalizeDeckVersion(t *testing.T) {
	deck := Deck{Version: 2, Questions: []Question{{Text: "Q", Options: []string{"a", "b"}, Correct: 0}}}
	if _, err := NormalizeDeck(deck); err == nil {
		t.Fatalf("expected unsupported version error")
	}
	deck.Version = 0
	if _, err := NormalizeDeck(deck); err == nil {
		t.Fatalf("expected missing version error")
	}
}

// TestNormalizeDeckTooManyOptions verifies the option count upper bound.
func TestNormalizeDeckTooManyOptions(t *testing.T) {
	deck := Deck{
		Version:   1,
		Questions: []Question{{Text: "Q", Options: []string{"a", "b", "c", "d", "e"}, Correct: 0}},
	}
	if _, err := NormalizeDeck(deck); err == nil {
		t.Fatalf("expected option count error")
	}
}

// TestDefaultDeckIsValid verifies the embedded deck passes validation.
func TestDefaultDeckIsValid(t *testing.T) {
	questions := DefaultDeck()
	if len(questions) == 0 {
		t.Fatalf("expected embedded questions")
	}
	if _, err := NormalizeDeck(Deck{Version: 1, Questions: questions}); err != nil {
		t.Fatalf("embedded deck failed validation: %v", err)
	}
	for i, q := range questions {
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			t.Fatalf("question %d correct index out of range", i)
		}
	}
}

// TestDefaultDeckIsCopied verifies callers cannot mutate the embedded deck.
func TestDefaultDeckIsCopied(t *testing.T) {
	first := DefaultDeck()
	first[0].Text = "mutated"
	second := DefaultDeck()
	if second[0].Text == "mutated" {
		t.Fatalf("DefaultDeck shares backing storage")
	}
}
