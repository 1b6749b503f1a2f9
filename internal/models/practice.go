package models

import "time"

// PracticeSession represents one review run recorded to the history store
type PracticeSession struct {
	ID           string // uuid
	User         string
	StartedAt    time.Time
	CompletedAt  *time.Time
	TotalWords   int
	CorrectWords int
}

// Accuracy is the fraction of correct answers in the session, 0 when no
// words were answered
func (s *PracticeSession) Accuracy() float64 {
	if s.TotalWords == 0 {
		return 0
	}
	return float64(s.CorrectWords) / float64(s.TotalWords)
}

// WordAttempt represents a single answered word in a practice session
type WordAttempt struct {
	ID          string // uuid
	SessionID   string
	Word        string
	AttemptText string
	IsCorrect   bool
	// StreakAfter is the word's streak after the outcome was recorded:
	// one higher on success, zero on failure.
	StreakAfter int
	AttemptedAt time.Time
}
