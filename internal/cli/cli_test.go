package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizdeck/internal/scores"
	"quizdeck/internal/ui/quiz"
)

// TestRunHelp verifies the usage text lists all commands.
func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"help"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ExitOK, got %d", code)
	}
	for _, name := range []string{"play", "scores", "history", "validate"} {
		if !strings.Contains(stdout.String(), name) {
			t.Fatalf("expected usage to list %q:\n%s", name, stdout.String())
		}
	}
}

// TestRunUnknownCommand verifies unknown commands fail with usage.
func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"bogus"}, &stdout, &stderr)
	if code != ExitUsage {
		t.Fatalf("expected ExitUsage, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Unknown command: bogus") {
		t.Fatalf("expected unknown command message, got:\n%s", stderr.String())
	}
}

// TestBareInvocationRequiresTTY verifies the quiz refuses non-terminals.
func TestBareInvocationRequiresTTY(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(nil, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected ExitError, got %d", code)
	}
	if !strings.Contains(stderr.String(), "requires a TTY") {
		t.Fatalf("expected TTY message, got:\n%s", stderr.String())
	}
}

// TestPlayLaunchesUI verifies play wires config and deck into the UI.
func TestPlayLaunchesUI(t *testing.T) {
	origTerminal := isTerminal
	origRun := runQuiz
	defer func() {
		isTerminal = origTerminal
		runQuiz = origRun
	}()
	isTerminal = func(io.Writer) bool { return true }
	launched := false
	runQuiz = func(stdout io.Writer, model quiz.Model) error {
		launched = true
		return nil
	}

	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := Run([]string{
		"play",
		"--scores", filepath.Join(dir, "scores.json"),
		"--history", filepath.Join(dir, "history.json"),
		"--no-color",
	}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ExitOK, got %d (stderr: %s)", code, stderr.String())
	}
	if !launched {
		t.Fatalf("expected the UI to be launched")
	}
}

// TestPlayRejectsBrokenDeck verifies deck errors are fatal for play.
func TestPlayRejectsBrokenDeck(t *testing.T) {
	origTerminal := isTerminal
	defer func() { isTerminal = origTerminal }()
	isTerminal = func(io.Writer) bool { return true }

	dir := t.TempDir()
	deckPath := filepath.Join(dir, "deck.yml")
	if err := os.WriteFile(deckPath, []byte("version: 1\nquestions: []\n"), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	var stdout, stderr bytes.Buffer
	code := Run([]string{"play", "--deck", deckPath}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected ExitError, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Failed to load deck") {
		t.Fatalf("expected deck error, got:\n%s", stderr.String())
	}
}

// TestScoresCommandEmpty verifies the empty leaderboard message.
func TestScoresCommandEmpty(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := Run([]string{"scores", "--scores", filepath.Join(dir, "scores.json")}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ExitOK, got %d", code)
	}
	if !strings.Contains(stdout.String(), "No high scores yet.") {
		t.Fatalf("expected empty message, got:\n%s", stdout.String())
	}
}

// TestScoresCommandPrintsBoard verifies leaderboard output.
func TestScoresCommandPrintsBoard(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scores.json")
	store := scores.NewStore(path)
	if _, err := store.Save(scores.Record{Name: "Ada", Score: 4, Total: 5}); err != nil {
		t.Fatalf("seed board: %v", err)
	}
	var stdout, stderr bytes.Buffer
	code := Run([]string{"scores", "--scores", path}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ExitOK, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Ada") || !strings.Contains(stdout.String(), "4/5") {
		t.Fatalf("expected board output, got:\n%s", stdout.String())
	}
}

// TestScoresCommandCorruptFile verifies corruption degrades to empty.
func TestScoresCommandCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scores.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	var stdout, stderr bytes.Buffer
	code := Run([]string{"scores", "--scores", path}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ExitOK, got %d", code)
	}
	if !strings.Contains(stdout.String(), "No high scores yet.") {
		t.Fatalf("expected empty message, got:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "unreadable") {
		t.Fatalf("expected corruption note on stderr, got:\n%s", stderr.String())
	}
}

// TestValidateCommand verifies deck validation output and exit codes.
func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yml")
	payload := "version: 1\nquestions:\n  - text: Q\n    options: [a, b]\n    correct: 0\n"
	if err := os.WriteFile(good, []byte(payload), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"validate", "--deck", good}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("expected ExitOK, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Deck is valid: 1 questions.") {
		t.Fatalf("expected valid message, got:\n%s", stdout.String())
	}

	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("version: 1\nquestions:\n  - text: Q\n    options: [a]\n    correct: 2\n"), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	stdout.Reset()
	stderr.Reset()
	if code := Run([]string{"validate", "--deck", bad}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected ExitError, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Invalid deck") {
		t.Fatalf("expected invalid deck message, got:\n%s", stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	if code := Run([]string{"validate"}, &stdout, &stderr); code != ExitUsage {
		t.Fatalf("expected ExitUsage without --deck, got %d", code)
	}
}
