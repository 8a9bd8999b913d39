package quiz

import (
	"quizdeck/internal/scores"
	"quizdeck/internal/session"
)

// Phase identifies where the quiz lifecycle currently is.
type Phase int

const (
	// PhaseQuiz is the in-progress question view.
	PhaseQuiz Phase = iota
	// PhaseConfirm asks whether to submit now.
	PhaseConfirm
	// PhaseResult shows the score and offers to save it.
	PhaseResult
	// PhaseName collects the player name for the leaderboard.
	PhaseName
	// PhaseDone is terminal: the quiz is submitted and its controls are inert.
	PhaseDone
	// PhaseBoard overlays the leaderboard on top of any other phase.
	PhaseBoard
)

// State is the complete UI state the view renders from.
type State struct {
	Session session.Session
	Phase   Phase
	// ReturnTo is the phase restored when the leaderboard overlay closes.
	ReturnTo Phase
	// Cursor is the highlighted option in the question view.
	Cursor int
	// ConfirmEmpty marks the confirmation as the zero-answered variant.
	ConfirmEmpty bool
	Score        int
	Percent      float64
	Saved        bool
	// Rank is the 1-based board position of the saved record, 0 if none.
	Rank         int
	SaveError    string
	Board        []scores.Record
	BoardCorrupt bool
}

// Total returns the number of questions in the deck.
func (s State) Total() int {
	return len(s.Session.Questions)
}
