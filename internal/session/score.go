package session

import "math"

// Score counts the questions whose recorded answer matches the correct
// index. Unanswered questions never count.
func Score(s Session) int {
	score := 0
	for i, q := range s.Questions {
		if s.Answers[i] != Unanswered && s.Answers[i] == q.Correct {
			score++
		}
	}
	return score
}

// Percent converts a score to a percentage rounded half-up to one decimal
// place. A zero total yields 0.
func Percent(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	raw := float64(score) / float64(total) * 100
	return math.Floor(raw*10+0.5) / 10
}
