package cli

import (
	"flag"
	"fmt"
	"io"

	"quizdeck/internal/config"
	"quizdeck/internal/history"
	"quizdeck/internal/question"
	"quizdeck/internal/scores"
	"quizdeck/internal/ui/quiz"
)

// runQuiz launches the interactive UI. Swappable for tests.
var runQuiz = quiz.Run

func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to a config file")
		deckPath := fs.String("deck", "", "Path to a question deck file (YAML or JSON)")
		scoresPath := fs.String("scores", "", "Override the leaderboard file path")
		historyPath := fs.String("history", "", "Override the history file path")
		noColor := fs.Bool("no-color", false, "Disable color output")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		applyOverrides(&cfg, *deckPath, *scoresPath, *historyPath)
		if *noColor {
			cfg.UI.NoColor = true
		}

		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "The interactive quiz requires a TTY.")
			return ExitError
		}

		questions, err := loadDeck(cfg.Deck)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load deck: %v\n", err)
			return ExitError
		}

		model := quiz.NewModel(
			questions,
			scores.NewStore(cfg.Scores),
			history.NewStore(cfg.History),
			quiz.Options{NoColor: cfg.UI.NoColor},
		)
		if err := runQuiz(stdout, model); err != nil {
			fmt.Fprintf(stderr, "Quiz UI failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// loadConfig resolves the effective configuration for a command.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault()
}

// applyOverrides layers command-line flags over the config file.
func applyOverrides(cfg *config.Config, deck, scoresPath, historyPath string) {
	if deck != "" {
		cfg.Deck = deck
	}
	if scoresPath != "" {
		cfg.Scores = scoresPath
	}
	if historyPath != "" {
		cfg.History = historyPath
	}
}

// loadDeck loads a deck file, or the embedded deck when none is configured.
func loadDeck(path string) ([]question.Question, error) {
	if path == "" {
		return question.DefaultDeck(), nil
	}
	return question.LoadDeck(path)
}
