package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"time"

	"spelltrainer/internal/i18n"
	"spelltrainer/internal/models"
	"spelltrainer/internal/streak"

	"github.com/google/uuid"
)

// SessionOutcome tells the caller how a review run ended
type SessionOutcome int

const (
	// OutcomeCompleted means the whole selected queue was answered
	OutcomeCompleted SessionOutcome = iota
	// OutcomeNothingDue means there were no non-mastered words at all
	OutcomeNothingDue
	// OutcomeAllDoneToday means every due word was already reviewed today
	OutcomeAllDoneToday
	// OutcomeInterrupted means the user cancelled mid-session; outcomes
	// recorded before the interrupt are kept
	OutcomeInterrupted
)

// ReviewSummary reports what happened during a review run
type ReviewSummary struct {
	Outcome  SessionOutcome
	Reviewed int
	Correct  int
}

// Presenter renders review prompts and feedback. The terminal presenter
// suppresses anything that would leak the answer when speech mode is on.
type Presenter interface {
	ReviewIntro(today string, total, alreadyReviewed int)
	NothingDue()
	AllDoneToday()
	ShowWord(index, total int, entry *models.WordEntry)
	Correct(entry *models.WordEntry)
	Wrong(entry *models.WordEntry)
	Done(summary ReviewSummary)
}

// Speaker plays spoken prompts. Speak starts playback and returns
// immediately, silencing any prompt still playing.
type Speaker interface {
	Enabled() bool
	Speak(parts ...string)
	Stop()
}

// LineReader reads one line of user input, honoring context cancellation
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// AttemptRecorder persists review runs to the history store. Recording is
// best-effort; the session keeps going when it fails.
type AttemptRecorder interface {
	CreateSession(session *models.PracticeSession) error
	RecordAttempt(attempt *models.WordAttempt) error
	CompleteSession(sessionID string, totalWords, correctWords int, completedAt time.Time) error
}

// ReviewService drives one interactive pass over the due queue
type ReviewService struct {
	presenter Presenter
	speaker   Speaker
	input     LineReader
	recorder  AttemptRecorder // nil disables history recording
	tr        *i18n.Translator
	user      string

	// shuffle is swapped out by tests for a deterministic ordering
	shuffle func(n int, swap func(i, j int))
	now     func() time.Time
}

// NewReviewService creates a new review service. recorder may be nil when
// the history store is unavailable.
func NewReviewService(presenter Presenter, speaker Speaker, input LineReader, recorder AttemptRecorder, tr *i18n.Translator, user string) *ReviewService {
	return &ReviewService{
		presenter: presenter,
		speaker:   speaker,
		input:     input,
		recorder:  recorder,
		tr:        tr,
		user:      user,
		shuffle:   rand.Shuffle,
		now:       time.Now,
	}
}

// Run reviews the due words once. The queue is shuffled uniformly at random
// and truncated to limit afterwards (limit <= 0 means no limit), so which
// words a limited run skips is random rather than positional. Entries are
// only ever mutated through the streak engine; an interrupt keeps every
// outcome recorded so far and returns OutcomeInterrupted.
func (s *ReviewService) Run(ctx context.Context, entries map[string]*models.WordEntry, today string, limit int) (ReviewSummary, error) {
	queue := streak.BuildQueue(entries, today)
	alreadyReviewed := streak.ReviewedTodayCount(entries, today)

	if len(queue) == 0 {
		if alreadyReviewed > 0 {
			s.presenter.AllDoneToday()
			return ReviewSummary{Outcome: OutcomeAllDoneToday}, nil
		}
		s.presenter.NothingDue()
		return ReviewSummary{Outcome: OutcomeNothingDue}, nil
	}

	s.shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})
	if limit > 0 && limit < len(queue) {
		queue = queue[:limit]
	}

	s.presenter.ReviewIntro(today, len(queue), alreadyReviewed)

	sessionID := s.beginRecording(today)
	summary := ReviewSummary{Outcome: OutcomeCompleted}

	for i, entry := range queue {
		if ctx.Err() != nil {
			summary.Outcome = OutcomeInterrupted
			break
		}

		s.presenter.ShowWord(i+1, len(queue), entry)
		s.speakPrompt(entry)

		typed, err := s.input.ReadLine(ctx)
		s.speaker.Stop()
		if err != nil {
			if errors.Is(err, models.ErrInterrupted) {
				summary.Outcome = OutcomeInterrupted
				break
			}
			s.finishRecording(sessionID, summary)
			return summary, err
		}

		typed = strings.TrimSpace(typed)
		correct := strings.EqualFold(typed, entry.Word)
		streak.RecordOutcome(entry, today, correct)

		summary.Reviewed++
		if correct {
			summary.Correct++
			s.presenter.Correct(entry)
			s.speaker.Speak(s.tr.T("CORRECT"))
		} else {
			s.presenter.Wrong(entry)
			s.speaker.Speak(s.tr.T("WRONG"))
		}

		s.recordAttempt(sessionID, entry, typed, correct)
	}

	s.finishRecording(sessionID, summary)
	if summary.Outcome == OutcomeCompleted {
		s.presenter.Done(summary)
	}
	return summary, nil
}

// speakPrompt starts the spoken prompt for an entry without blocking, so
// the user can begin typing while audio is still playing
func (s *ReviewService) speakPrompt(entry *models.WordEntry) {
	if !s.speaker.Enabled() {
		return
	}
	if entry.Phrase != "" {
		s.speaker.Speak(entry.Phrase, s.tr.T("SAY_SPELL_NOW")+" "+entry.Word)
		return
	}
	s.speaker.Speak(s.tr.T("SAY_NEXT_WORD"))
}

func (s *ReviewService) beginRecording(today string) string {
	if s.recorder == nil {
		return ""
	}

	session := &models.PracticeSession{
		ID:        uuid.New().String(),
		User:      s.user,
		StartedAt: s.now(),
	}
	if err := s.recorder.CreateSession(session); err != nil {
		log.Printf("Warning: failed to record practice session: %v", err)
		return ""
	}
	return session.ID
}

func (s *ReviewService) recordAttempt(sessionID string, entry *models.WordEntry, typed string, correct bool) {
	if s.recorder == nil || sessionID == "" {
		return
	}

	attempt := &models.WordAttempt{
		ID:          uuid.New().String(),
		SessionID:   sessionID,
		Word:        entry.Word,
		AttemptText: typed,
		IsCorrect:   correct,
		StreakAfter: entry.Streak(),
		AttemptedAt: s.now(),
	}
	if err := s.recorder.RecordAttempt(attempt); err != nil {
		log.Printf("Warning: failed to record word attempt: %v", err)
	}
}

func (s *ReviewService) finishRecording(sessionID string, summary ReviewSummary) {
	if s.recorder == nil || sessionID == "" {
		return
	}
	if err := s.recorder.CompleteSession(sessionID, summary.Reviewed, summary.Correct, s.now()); err != nil {
		log.Printf("Warning: failed to complete practice session: %v", err)
	}
}
