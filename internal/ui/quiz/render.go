package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/scores"
)

// render produces the full view for the current phase.
func render(state State, name textinput.Model, board table.Model, noColor bool) string {
	switch state.Phase {
	case PhaseConfirm:
		return renderConfirm(state, noColor)
	case PhaseResult:
		return renderResult(state, noColor)
	case PhaseName:
		return renderName(state, name, noColor)
	case PhaseDone:
		return renderDone(state, noColor)
	case PhaseBoard:
		return renderBoard(state, board, noColor)
	}
	return renderQuiz(state, noColor)
}

// renderQuiz renders the in-progress question view.
func renderQuiz(state State, noColor bool) string {
	header := renderHeader(state, noColor)
	q := state.Session.CurrentQuestion()
	text := fmt.Sprintf("%d. %s", state.Session.Current+1, q.Text)
	options := renderOptions(state, noColor)
	help := stylize("←/→ navigate · 1-4/space select · s submit · v high scores · q quit", noColor, lipgloss.Color("244"))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", text, "", options, "", help)
}

// renderHeader renders the title and progress line.
func renderHeader(state State, noColor bool) string {
	title := stylize("Quizdeck", noColor, lipgloss.Color("33"))
	progress := renderProgress(state)
	answered := fmt.Sprintf("answered %d/%d", state.Session.AnsweredCount(), state.Total())
	return title + "  " + stylize(progress+" · "+answered, noColor, lipgloss.Color("242"))
}

// renderProgress renders the position indicator.
func renderProgress(state State) string {
	return fmt.Sprintf("Question %d / %d", state.Session.Current+1, state.Total())
}

// renderOptions renders the answer options with cursor and selection marks.
func renderOptions(state State, noColor bool) string {
	answer := state.Session.CurrentAnswer()
	options := state.Session.CurrentQuestion().Options
	lines := make([]string, 0, len(options))
	for i, option := range options {
		cursor := "  "
		if i == state.Cursor {
			cursor = "> "
		}
		marker := "( )"
		if i == answer {
			marker = "(x)"
		}
		line := fmt.Sprintf("%s%s %d. %s", cursor, marker, i+1, option)
		if i == answer {
			line = stylize(line, noColor, lipgloss.Color("36"))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderConfirm renders the submit confirmation prompt.
func renderConfirm(state State, noColor bool) string {
	message := "You are at the last question. Submit the quiz now?"
	if state.ConfirmEmpty {
		message = "You haven't answered any questions. Submit anyway?"
	}
	prompt := stylize(message, noColor, lipgloss.Color("214"))
	help := stylize("y submit · n go back", noColor, lipgloss.Color("244"))
	return lipgloss.JoinVertical(lipgloss.Left, renderHeader(state, noColor), "", prompt, "", help)
}

// renderResult renders the score summary and the save offer.
func renderResult(state State, noColor bool) string {
	summary := fmt.Sprintf("You scored %d out of %d (%s%%).", state.Score, state.Total(), formatPercent(state.Percent))
	offer := "Save your score to the high scores?"
	help := stylize("y save · n finish · v high scores", noColor, lipgloss.Color("244"))
	return lipgloss.JoinVertical(lipgloss.Left,
		stylize("Result", noColor, lipgloss.Color("33")), "",
		summary, "", offer, "", help)
}

// renderName renders the name entry prompt.
func renderName(state State, name textinput.Model, noColor bool) string {
	prompt := fmt.Sprintf("Enter your name (max %d chars):", scores.MaxNameLength)
	help := stylize("enter save · esc skip", noColor, lipgloss.Color("244"))
	return lipgloss.JoinVertical(lipgloss.Left,
		stylize("Save score", noColor, lipgloss.Color("33")), "",
		prompt, name.View(), "", help)
}

// renderDone renders the terminal submitted view.
func renderDone(state State, noColor bool) string {
	lines := []string{
		stylize("Quiz submitted", noColor, lipgloss.Color("33")),
		"",
		fmt.Sprintf("Final score: %d / %d (%s%%)", state.Score, state.Total(), formatPercent(state.Percent)),
	}
	if state.Saved {
		saved := "Your score was saved."
		if state.Rank > 0 {
			saved = fmt.Sprintf("Your score was saved at position %d.", state.Rank)
		}
		lines = append(lines, saved)
	}
	if state.SaveError != "" {
		lines = append(lines, stylize("Saving failed: "+state.SaveError, noColor, lipgloss.Color("196")))
	}
	lines = append(lines, "", stylize("v high scores · q quit", noColor, lipgloss.Color("244")))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderBoard renders the leaderboard overlay.
func renderBoard(state State, board table.Model, noColor bool) string {
	title := stylize("High Scores", noColor, lipgloss.Color("33"))
	lines := []string{title, ""}
	if state.BoardCorrupt {
		lines = append(lines, stylize("The previous leaderboard was unreadable and was treated as empty.", noColor, lipgloss.Color("214")), "")
	}
	if len(state.Board) == 0 {
		lines = append(lines, "No high scores yet.")
	} else {
		lines = append(lines, board.View())
	}
	lines = append(lines, "", stylize("esc close", noColor, lipgloss.Color("244")))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// formatPercent renders a percentage with one decimal place.
func formatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 1, 64)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
