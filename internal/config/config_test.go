package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadAppliesDefaults verifies missing fields pick up defaults.
func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quizdeck.yml")
	payload := "version: 1\ndeck: questions.yml\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Deck != "questions.yml" {
		t.Fatalf("expected deck path, got %q", cfg.Deck)
	}
	if cfg.Scores != DefaultScoresPath || cfg.History != DefaultHistoryPath {
		t.Fatalf("expected default paths, got %+v", cfg)
	}
}

// TestLoadRejectsUnknownFields verifies strict decoding.
func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quizdeck.yml")
	if err := os.WriteFile(path, []byte("version: 1\nscoreboard: x\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

// TestLoadRejectsBadVersion verifies unsupported versions fail validation.
func TestLoadRejectsBadVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quizdeck.yml")
	if err := os.WriteFile(path, []byte("version: 9\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected version error")
	}
}

// TestDefaults verifies the fallback configuration.
func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Version != 1 || cfg.Deck != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Scores != DefaultScoresPath || cfg.History != DefaultHistoryPath {
		t.Fatalf("unexpected default paths: %+v", cfg)
	}
}
