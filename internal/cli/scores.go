package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"quizdeck/internal/scores"
)

func runScores(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to a config file")
		scoresPath := fs.String("scores", "", "Override the leaderboard file path")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *scoresPath != "" {
			cfg.Scores = *scoresPath
		}

		board, err := scores.NewStore(cfg.Scores).Load()
		if err != nil {
			if !errors.Is(err, scores.ErrCorrupt) {
				fmt.Fprintf(stderr, "Failed to load leaderboard: %v\n", err)
				return ExitError
			}
			fmt.Fprintln(stderr, "The leaderboard file was unreadable and was treated as empty.")
		}
		if len(board) == 0 {
			fmt.Fprintln(stdout, "No high scores yet.")
			return ExitOK
		}
		fmt.Fprintln(stdout, "Top Scores:")
		for i, record := range board {
			fmt.Fprintf(stdout, "%2d. %-20s %d/%d\n", i+1, record.Name, record.Score, record.Total)
		}
		return ExitOK
	}
}
