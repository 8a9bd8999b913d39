package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question deck.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("deck validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeDeck trims whitespace and validates a question deck.
func NormalizeDeck(deck Deck) (Deck, error) {
	collector := &issueCollector{}
	if deck.Version == 0 {
		collector.add("version", "is required")
	} else if deck.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", deck.Version))
	}
	if len(deck.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	for i, q := range deck.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		q.Text = strings.TrimSpace(q.Text)
		if q.Text == "" {
			collector.add(prefix+".text", "is required")
		}

		q.Options = trimOptions(q.Options)
		if len(q.Options) < MinOptions || len(q.Options) > MaxOptions {
			collector.add(prefix+".options", fmt.Sprintf("must have between %d and %d entries", MinOptions, MaxOptions))
		}
		for optionIndex, option := range q.Options {
			if option == "" {
				collector.add(fmt.Sprintf("%s.options[%d]", prefix, optionIndex), "is required")
			}
		}

		if q.Correct < 0 || q.Correct >= len(q.Options) {
			collector.add(prefix+".correct", fmt.Sprintf("index %d is out of range", q.Correct))
		}

		deck.Questions[i] = q
	}

	if err := collector.result(); err != nil {
		return Deck{}, err
	}
	return deck, nil
}

func trimOptions(options []string) []string {
	trimmed := make([]string, 0, len(options))
	for _, option := range options {
		trimmed = append(trimmed, strings.TrimSpace(option))
	}
	return trimmed
}
