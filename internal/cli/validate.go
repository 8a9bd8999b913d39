package cli

import (
	"flag"
	"fmt"
	"io"

	"quizdeck/internal/question"
)

func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		deckPath := fs.String("deck", "", "Path to a question deck file (YAML or JSON)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *deckPath == "" {
			fmt.Fprintln(stderr, "The --deck flag is required.")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		questions, err := question.LoadDeck(*deckPath)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid deck: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Deck is valid: %d questions.\n", len(questions))
		return ExitOK
	}
}
