package session

import "quizdeck/internal/question"

// Unanswered marks a question with no recorded answer.
const Unanswered = -1

// Session is the state of one quiz attempt: the deck, the current position,
// and the recorded answers. It is a plain value; transition methods return
// the next state instead of mutating shared data.
type Session struct {
	Questions []question.Question
	Current   int
	Answers   []int
}

// New starts a session at the first question with nothing answered.
func New(questions []question.Question) Session {
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = Unanswered
	}
	return Session{Questions: questions, Answers: answers}
}

// CurrentQuestion returns the question at the current position.
func (s Session) CurrentQuestion() question.Question {
	return s.Questions[s.Current]
}

// CurrentAnswer returns the recorded answer for the current position, or
// Unanswered.
func (s Session) CurrentAnswer() int {
	return s.Answers[s.Current]
}

// Select records an answer for the current question. An out-of-range option
// leaves the session unchanged.
func (s Session) Select(option int) Session {
	if option < 0 || option >= len(s.CurrentQuestion().Options) {
		return s
	}
	answers := make([]int, len(s.Answers))
	copy(answers, s.Answers)
	answers[s.Current] = option
	s.Answers = answers
	return s
}

// Next advances to the following question. At the last question it leaves
// the session unchanged and reports that the end of the deck was reached;
// the caller decides whether that should prompt for submission.
func (s Session) Next() (Session, bool) {
	if s.Current >= len(s.Questions)-1 {
		return s, true
	}
	s.Current++
	return s, false
}

// Previous moves back one question and is a no-op at the first.
func (s Session) Previous() Session {
	if s.Current > 0 {
		s.Current--
	}
	return s
}

// AnsweredCount reports how many questions have a recorded answer.
func (s Session) AnsweredCount() int {
	count := 0
	for _, answer := range s.Answers {
		if answer != Unanswered {
			count++
		}
	}
	return count
}
