package history

import (
	"os"
	"path/filepath"
	"testing"
)

// TestAppendLoadRoundTrip verifies attempts persist in append order.
func TestAppendLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "history.json"))
	first := NewAttempt("Ada", 3, 5, 60.0)
	second := NewAttempt("", 5, 5, 100.0)
	if err := store.Append(first); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append(second); err != nil {
		t.Fatalf("append: %v", err)
	}
	attempts, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].ID != first.ID || attempts[1].ID != second.ID {
		t.Fatalf("append order not preserved: %+v", attempts)
	}
	if attempts[1].Name != "" || attempts[1].Percent != 100.0 {
		t.Fatalf("unexpected second attempt: %+v", attempts[1])
	}
}

// TestLoadMissingFile verifies a missing history is empty, not an error.
func TestLoadMissingFile(t *testing.T) {
	attempts, err := NewStore(filepath.Join(t.TempDir(), "history.json")).Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(attempts) != 0 {
		t.Fatalf("expected empty history, got %+v", attempts)
	}
}

// TestLoadCorruptFile verifies corruption degrades to an empty history.
func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	store := NewStore(path)
	attempts, err := store.Load()
	if err != nil || len(attempts) != 0 {
		t.Fatalf("expected empty history, got %+v err=%v", attempts, err)
	}
	if err := store.Append(NewAttempt("Ada", 1, 5, 20.0)); err != nil {
		t.Fatalf("append over corrupt file: %v", err)
	}
	attempts, err = store.Load()
	if err != nil || len(attempts) != 1 {
		t.Fatalf("expected 1 attempt after recovery, got %+v err=%v", attempts, err)
	}
}

// TestNewAttemptAssignsID verifies each attempt gets a unique id.
func TestNewAttemptAssignsID(t *testing.T) {
	a := NewAttempt("Ada", 1, 5, 20.0)
	b := NewAttempt("Ada", 1, 5, 20.0)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a.ID, b.ID)
	}
	if a.RecordedAt.IsZero() {
		t.Fatalf("expected a recorded timestamp")
	}
}
