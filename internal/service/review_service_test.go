package service

import (
	"context"
	"testing"
	"time"

	"spelltrainer/internal/i18n"
	"spelltrainer/internal/models"
)

const today = "2025-06-10"

// fakeTerminal implements Presenter and LineReader. ReadLine answers for
// whichever word ShowWord presented last, using the answers map; words
// missing from the map are answered wrong.
type fakeTerminal struct {
	answers map[string]string

	current      *models.WordEntry
	shown        []string
	correctCalls []string
	wrongCalls   []string
	nothingDue   bool
	allDone      bool
	doneSummary  *ReviewSummary

	// interruptAfter > 0 interrupts once that many answers were given
	interruptAfter int
	answered       int
}

func (f *fakeTerminal) ReviewIntro(today string, total, alreadyReviewed int) {}

func (f *fakeTerminal) NothingDue() { f.nothingDue = true }

func (f *fakeTerminal) AllDoneToday() { f.allDone = true }

func (f *fakeTerminal) ShowWord(index, total int, entry *models.WordEntry) {
	f.current = entry
	f.shown = append(f.shown, entry.Word)
}

func (f *fakeTerminal) Correct(entry *models.WordEntry) {
	f.correctCalls = append(f.correctCalls, entry.Word)
}

func (f *fakeTerminal) Wrong(entry *models.WordEntry) {
	f.wrongCalls = append(f.wrongCalls, entry.Word)
}

func (f *fakeTerminal) Done(summary ReviewSummary) { f.doneSummary = &summary }

func (f *fakeTerminal) ReadLine(ctx context.Context) (string, error) {
	if f.interruptAfter > 0 && f.answered >= f.interruptAfter {
		return "", models.ErrInterrupted
	}
	f.answered++
	if answer, ok := f.answers[f.current.Word]; ok {
		return answer, nil
	}
	return "definitely wrong", nil
}

type fakeSpeaker struct {
	enabled bool
	spoken  [][]string
	stops   int
}

func (f *fakeSpeaker) Enabled() bool { return f.enabled }

func (f *fakeSpeaker) Speak(parts ...string) { f.spoken = append(f.spoken, parts) }

func (f *fakeSpeaker) Stop() { f.stops++ }

type fakeRecorder struct {
	sessions  []*models.PracticeSession
	attempts  []*models.WordAttempt
	completed map[string][2]int
}

func (f *fakeRecorder) CreateSession(s *models.PracticeSession) error {
	f.sessions = append(f.sessions, s)
	return nil
}

func (f *fakeRecorder) RecordAttempt(a *models.WordAttempt) error {
	f.attempts = append(f.attempts, a)
	return nil
}

func (f *fakeRecorder) CompleteSession(id string, total, correct int, completedAt time.Time) error {
	if f.completed == nil {
		f.completed = map[string][2]int{}
	}
	f.completed[id] = [2]int{total, correct}
	return nil
}

func newTestService(term *fakeTerminal, speaker *fakeSpeaker, recorder AttemptRecorder) *ReviewService {
	catalog, _ := i18n.LoadCatalog("")
	svc := NewReviewService(term, speaker, term, recorder, i18n.New("en", catalog), "tester")
	// Deterministic order for tests
	svc.shuffle = func(n int, swap func(i, j int)) {}
	return svc
}

func entryMap(entries ...*models.WordEntry) map[string]*models.WordEntry {
	m := make(map[string]*models.WordEntry, len(entries))
	for _, e := range entries {
		m[e.Word] = e
	}
	return m
}

func TestRunNothingDue(t *testing.T) {
	term := &fakeTerminal{}
	svc := newTestService(term, &fakeSpeaker{}, nil)

	summary, err := svc.Run(context.Background(), entryMap(), today, 0)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if summary.Outcome != OutcomeNothingDue {
		t.Errorf("outcome = %v, want OutcomeNothingDue", summary.Outcome)
	}
	if !term.nothingDue {
		t.Error("presenter.NothingDue was not called")
	}
}

func TestRunAllDoneToday(t *testing.T) {
	entries := entryMap(
		&models.WordEntry{Word: "cat", History: []string{today}},
		&models.WordEntry{Word: "dog", History: []string{"2025-06-09", today}},
	)
	term := &fakeTerminal{}
	svc := newTestService(term, &fakeSpeaker{}, nil)

	summary, err := svc.Run(context.Background(), entries, today, 0)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if summary.Outcome != OutcomeAllDoneToday {
		t.Errorf("outcome = %v, want OutcomeAllDoneToday", summary.Outcome)
	}
	if !term.allDone {
		t.Error("presenter.AllDoneToday was not called")
	}
}

func TestRunRecordsOutcomes(t *testing.T) {
	cat := &models.WordEntry{Word: "cat", Phrase: "The cat sat.", History: []string{"2025-06-09"}}
	dog := &models.WordEntry{Word: "dog", History: []string{"2025-06-08", "2025-06-09"}}
	entries := entryMap(cat, dog)

	term := &fakeTerminal{answers: map[string]string{
		"cat": "CAT", // case-insensitive match
		"dog": "dgo",
	}}
	recorder := &fakeRecorder{}
	svc := newTestService(term, &fakeSpeaker{}, recorder)

	summary, err := svc.Run(context.Background(), entries, today, 0)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if summary.Outcome != OutcomeCompleted {
		t.Errorf("outcome = %v, want OutcomeCompleted", summary.Outcome)
	}
	if summary.Reviewed != 2 || summary.Correct != 1 {
		t.Errorf("summary = %+v, want Reviewed 2 Correct 1", summary)
	}

	if cat.Streak() != 2 || cat.LastReview() != today {
		t.Errorf("cat = streak %d last %q, want 2 %q", cat.Streak(), cat.LastReview(), today)
	}
	if dog.Streak() != 0 {
		t.Errorf("dog streak = %d, want 0 after failure", dog.Streak())
	}

	if len(term.correctCalls) != 1 || term.correctCalls[0] != "cat" {
		t.Errorf("Correct calls = %v, want [cat]", term.correctCalls)
	}
	if len(term.wrongCalls) != 1 || term.wrongCalls[0] != "dog" {
		t.Errorf("Wrong calls = %v, want [dog]", term.wrongCalls)
	}
	if term.doneSummary == nil {
		t.Error("presenter.Done was not called")
	}

	if len(recorder.sessions) != 1 {
		t.Fatalf("recorded sessions = %d, want 1", len(recorder.sessions))
	}
	if len(recorder.attempts) != 2 {
		t.Fatalf("recorded attempts = %d, want 2", len(recorder.attempts))
	}
	sessionID := recorder.sessions[0].ID
	for _, a := range recorder.attempts {
		if a.SessionID != sessionID {
			t.Errorf("attempt session = %q, want %q", a.SessionID, sessionID)
		}
	}
	if got := recorder.completed[sessionID]; got != [2]int{2, 1} {
		t.Errorf("completed counts = %v, want [2 1]", got)
	}
}

func TestRunLimitTruncatesAfterShuffle(t *testing.T) {
	entries := entryMap(
		&models.WordEntry{Word: "ant"},
		&models.WordEntry{Word: "bee"},
		&models.WordEntry{Word: "cow"},
		&models.WordEntry{Word: "elk"},
		&models.WordEntry{Word: "fox"},
	)

	term := &fakeTerminal{answers: map[string]string{}}
	svc := newTestService(term, &fakeSpeaker{}, nil)

	summary, err := svc.Run(context.Background(), entries, today, 2)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if summary.Reviewed != 2 {
		t.Errorf("Reviewed = %d, want 2", summary.Reviewed)
	}
	if len(term.shown) != 2 {
		t.Fatalf("shown %d words, want 2", len(term.shown))
	}
	for _, word := range term.shown {
		if _, ok := entries[word]; !ok {
			t.Errorf("shown word %q is not in the entry set", word)
		}
	}
}

func TestRunInterruptKeepsRecordedOutcomes(t *testing.T) {
	entries := entryMap(
		&models.WordEntry{Word: "ant"},
		&models.WordEntry{Word: "bee"},
		&models.WordEntry{Word: "cow"},
	)

	term := &fakeTerminal{
		answers:        map[string]string{"ant": "ant", "bee": "bee", "cow": "cow"},
		interruptAfter: 1,
	}
	recorder := &fakeRecorder{}
	svc := newTestService(term, &fakeSpeaker{}, recorder)

	summary, err := svc.Run(context.Background(), entries, today, 0)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if summary.Outcome != OutcomeInterrupted {
		t.Errorf("outcome = %v, want OutcomeInterrupted", summary.Outcome)
	}
	if summary.Reviewed != 1 {
		t.Errorf("Reviewed = %d, want 1", summary.Reviewed)
	}

	// The answered word keeps its outcome; untouched words stay untouched
	recorded := 0
	for _, e := range entries {
		if e.ReviewedToday(today) {
			recorded++
		}
	}
	if recorded != 1 {
		t.Errorf("entries reviewed today = %d, want 1", recorded)
	}

	// An interrupted session still closes its history record
	if len(recorder.sessions) == 1 {
		if got := recorder.completed[recorder.sessions[0].ID]; got != [2]int{1, 1} {
			t.Errorf("completed counts = %v, want [1 1]", got)
		}
	}
}

func TestRunSpeaksPromptAndStopsAfterAnswer(t *testing.T) {
	cat := &models.WordEntry{Word: "cat", Phrase: "The cat sat."}
	term := &fakeTerminal{answers: map[string]string{"cat": "cat"}}
	speaker := &fakeSpeaker{enabled: true}
	svc := newTestService(term, speaker, nil)

	if _, err := svc.Run(context.Background(), entryMap(cat), today, 0); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if len(speaker.spoken) < 2 {
		t.Fatalf("spoken prompts = %d, want prompt plus feedback", len(speaker.spoken))
	}
	// The word prompt includes the phrase followed by the spell instruction
	first := speaker.spoken[0]
	if len(first) != 2 || first[0] != "The cat sat." {
		t.Errorf("first spoken prompt = %v, want phrase plus spell instruction", first)
	}
	if speaker.stops == 0 {
		t.Error("speaker was never stopped after typing finished")
	}
}
