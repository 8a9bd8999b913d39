package quiz

import (
	"quizdeck/internal/question"
	"quizdeck/internal/scores"
	"quizdeck/internal/session"
)

// NewState starts a quiz over the given questions.
func NewState(questions []question.Question) State {
	return State{Session: session.New(questions)}
}

// SelectOption records an answer for the current question and keeps the
// cursor on it. Inert outside the question view.
func SelectOption(state State, option int) State {
	if state.Phase != PhaseQuiz {
		return state
	}
	next := state.Session.Select(option)
	if next.CurrentAnswer() == option {
		state.Cursor = option
	}
	state.Session = next
	return state
}

// MoveCursor moves the option highlight, clamped to the option range.
func MoveCursor(state State, delta int) State {
	if state.Phase != PhaseQuiz {
		return state
	}
	cursor := state.Cursor + delta
	limit := len(state.Session.CurrentQuestion().Options) - 1
	if cursor < 0 {
		cursor = 0
	}
	if cursor > limit {
		cursor = limit
	}
	state.Cursor = cursor
	return state
}

// MoveNext advances to the next question. At the last question it raises
// the submit confirmation instead of advancing.
func MoveNext(state State) State {
	if state.Phase != PhaseQuiz {
		return state
	}
	next, atEnd := state.Session.Next()
	if atEnd {
		state.Phase = PhaseConfirm
		state.ConfirmEmpty = false
		return state
	}
	state.Session = next
	state.Cursor = cursorFor(next)
	return state
}

// MovePrevious moves back one question; a no-op at the first.
func MovePrevious(state State) State {
	if state.Phase != PhaseQuiz {
		return state
	}
	state.Session = state.Session.Previous()
	state.Cursor = cursorFor(state.Session)
	return state
}

// RequestSubmit starts submission. With zero answered questions it asks for
// confirmation first instead of submitting silently.
func RequestSubmit(state State) State {
	if state.Phase != PhaseQuiz {
		return state
	}
	if state.Session.AnsweredCount() == 0 {
		state.Phase = PhaseConfirm
		state.ConfirmEmpty = true
		return state
	}
	return submit(state)
}

// CancelConfirm returns from the confirmation prompt to the quiz.
func CancelConfirm(state State) State {
	if state.Phase != PhaseConfirm {
		return state
	}
	state.Phase = PhaseQuiz
	state.ConfirmEmpty = false
	return state
}

// ConfirmSubmit accepts the confirmation prompt. Accepting the at-end
// prompt with nothing answered re-prompts with the empty-answer warning.
func ConfirmSubmit(state State) State {
	if state.Phase != PhaseConfirm {
		return state
	}
	if !state.ConfirmEmpty && state.Session.AnsweredCount() == 0 {
		state.ConfirmEmpty = true
		return state
	}
	return submit(state)
}

// submit computes the score and moves to the result view.
func submit(state State) State {
	state.Score = session.Score(state.Session)
	state.Percent = session.Percent(state.Score, state.Total())
	state.Phase = PhaseResult
	state.ConfirmEmpty = false
	return state
}

// BeginSave moves from the result view to name entry.
func BeginSave(state State) State {
	if state.Phase != PhaseResult {
		return state
	}
	state.Phase = PhaseName
	return state
}

// FinishWithoutSave ends the quiz without a leaderboard record.
func FinishWithoutSave(state State) State {
	state.Phase = PhaseDone
	return state
}

// FinishWithSave ends the quiz after a successful save.
func FinishWithSave(state State, board []scores.Record, rank int) State {
	state.Phase = PhaseDone
	state.Saved = true
	state.Board = board
	state.Rank = rank
	return state
}

// ShowBoard opens the leaderboard overlay, remembering the current phase.
func ShowBoard(state State, board []scores.Record, corrupt bool) State {
	if state.Phase == PhaseBoard {
		return state
	}
	state.ReturnTo = state.Phase
	state.Phase = PhaseBoard
	state.Board = board
	state.BoardCorrupt = corrupt
	return state
}

// HideBoard closes the leaderboard overlay and restores the prior phase.
func HideBoard(state State) State {
	if state.Phase != PhaseBoard {
		return state
	}
	state.Phase = state.ReturnTo
	return state
}

// cursorFor places the highlight on the recorded answer, or the first
// option when the question is unanswered.
func cursorFor(s session.Session) int {
	if answer := s.CurrentAnswer(); answer != session.Unanswered {
		return answer
	}
	return 0
}
