package models

const (
	// MasteryStreak is the number of distinct successful review days a word
	// needs before it leaves the review rotation.
	MasteryStreak = 5

	// DateSeparator joins history dates in the persisted history column.
	DateSeparator = "|"
)

// WordEntry is a single vocabulary item and its review history
type WordEntry struct {
	Word   string
	Phrase string
	// History holds the ISO dates (YYYY-MM-DD) of successful reviews,
	// oldest first. It grows by at most one date per day and is cleared
	// entirely by a failed review.
	History []string
}

// Streak is the number of successful review days since the last failure
func (e *WordEntry) Streak() int {
	return len(e.History)
}

// Mastered reports whether the word has reached the mastery streak
func (e *WordEntry) Mastered() bool {
	return e.Streak() >= MasteryStreak
}

// ReviewedToday reports whether the most recent successful review was today
func (e *WordEntry) ReviewedToday(today string) bool {
	return len(e.History) > 0 && e.History[len(e.History)-1] == today
}

// LastReview returns the most recent successful review date, or "" if the
// word has never been reviewed
func (e *WordEntry) LastReview() string {
	if len(e.History) == 0 {
		return ""
	}
	return e.History[len(e.History)-1]
}
