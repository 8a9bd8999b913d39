package cli

import (
	"flag"
	"fmt"
	"io"
	"time"

	"quizdeck/internal/history"
)

func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to a config file")
		historyPath := fs.String("history", "", "Override the history file path")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *historyPath != "" {
			cfg.History = *historyPath
		}

		attempts, err := history.NewStore(cfg.History).Load()
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load history: %v\n", err)
			return ExitError
		}
		if len(attempts) == 0 {
			fmt.Fprintln(stdout, "No attempts recorded yet.")
			return ExitOK
		}
		for _, attempt := range attempts {
			name := attempt.Name
			if name == "" {
				name = "-"
			}
			fmt.Fprintf(stdout, "%s  %-20s %d/%d (%.1f%%)\n",
				attempt.RecordedAt.Format(time.RFC3339), name,
				attempt.Score, attempt.Total, attempt.Percent)
		}
		return ExitOK
	}
}
