package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDeck reads, parses, and validates a question deck file.
func LoadDeck(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	deck, err := parseDeck(data, path)
	if err != nil {
		return nil, err
	}
	normalized, err := NormalizeDeck(deck)
	if err != nil {
		return nil, err
	}
	return normalized.Questions, nil
}

func parseDeck(data []byte, path string) (Deck, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSONDeck(data)
	}
	return parseYAMLDeck(data)
}

func parseJSONDeck(data []byte) (Deck, error) {
	var deck Deck
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&deck); err != nil {
		return Deck{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Deck{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Deck{}, fmt.Errorf("parse json: %w", err)
	}
	return deck, nil
}

func parseYAMLDeck(data []byte) (Deck, error) {
	var deck Deck
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&deck); err != nil {
		return Deck{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Deck{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Deck{}, fmt.Errorf("parse yaml: %w", err)
	}
	return deck, nil
}
