package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"spelltrainer/internal/models"
	"spelltrainer/internal/repository"
)

// BackupData represents the complete exported state
type BackupData struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Words      []WordBackup    `json:"words"`
	Sessions   []SessionBackup `json:"sessions"`
}

// WordBackup represents a word entry for backup
type WordBackup struct {
	Word    string   `json:"word"`
	Phrase  string   `json:"phrase"`
	History []string `json:"history"`
}

// SessionBackup represents a practice session and its attempts for backup
type SessionBackup struct {
	ID           string          `json:"id"`
	User         string          `json:"user"`
	StartedAt    time.Time       `json:"started_at"`
	CompletedAt  *time.Time      `json:"completed_at"`
	TotalWords   int             `json:"total_words"`
	CorrectWords int             `json:"correct_words"`
	Attempts     []AttemptBackup `json:"attempts"`
}

// AttemptBackup represents a single word attempt for backup
type AttemptBackup struct {
	Word        string    `json:"word"`
	AttemptText string    `json:"attempt_text"`
	IsCorrect   bool      `json:"is_correct"`
	StreakAfter int       `json:"streak_after"`
	AttemptedAt time.Time `json:"attempted_at"`
}

// BackupService exports the word file and recorded practice history to a
// single JSON document
type BackupService struct {
	words   *repository.WordRepository
	history *repository.HistoryRepository // nil when the history store is unavailable
}

// NewBackupService creates a new backup service. history may be nil.
func NewBackupService(words *repository.WordRepository, history *repository.HistoryRepository) *BackupService {
	return &BackupService{words: words, history: history}
}

// Export writes the backup to outputPath. The file is written to a temp
// file and renamed into place so a failed export never clobbers an earlier
// backup.
func (s *BackupService) Export(outputPath string) error {
	backup := &BackupData{
		Version:    "1.0",
		ExportedAt: time.Now(),
	}

	if err := s.exportWords(backup); err != nil {
		return fmt.Errorf("failed to export words: %w", err)
	}
	if err := s.exportSessions(backup); err != nil {
		return fmt.Errorf("failed to export sessions: %w", err)
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup: %w", err)
	}

	dir := filepath.Dir(outputPath)
	tmp, err := os.CreateTemp(dir, ".backup-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close backup: %w", err)
	}

	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		return fmt.Errorf("failed to replace backup file: %w", err)
	}

	return nil
}

func (s *BackupService) exportWords(backup *BackupData) error {
	entries, err := s.words.Load()
	if err != nil {
		return err
	}

	backup.Words = make([]WordBackup, 0, len(entries))
	for _, e := range entries {
		backup.Words = append(backup.Words, WordBackup{
			Word:    e.Word,
			Phrase:  e.Phrase,
			History: e.History,
		})
	}
	// Same order as the word file, so backups of identical state match
	sort.Slice(backup.Words, func(i, j int) bool {
		return strings.ToLower(backup.Words[i].Word) < strings.ToLower(backup.Words[j].Word)
	})
	return nil
}

func (s *BackupService) exportSessions(backup *BackupData) error {
	backup.Sessions = []SessionBackup{}
	if s.history == nil {
		return nil
	}

	sessions, err := s.history.AllSessions()
	if err != nil {
		return err
	}

	for _, session := range sessions {
		attempts, err := s.history.SessionAttempts(session.ID)
		if err != nil {
			return err
		}
		backup.Sessions = append(backup.Sessions, toSessionBackup(session, attempts))
	}
	return nil
}

func toSessionBackup(session models.PracticeSession, attempts []models.WordAttempt) SessionBackup {
	out := SessionBackup{
		ID:           session.ID,
		User:         session.User,
		StartedAt:    session.StartedAt,
		CompletedAt:  session.CompletedAt,
		TotalWords:   session.TotalWords,
		CorrectWords: session.CorrectWords,
		Attempts:     make([]AttemptBackup, 0, len(attempts)),
	}
	for _, a := range attempts {
		out.Attempts = append(out.Attempts, AttemptBackup{
			Word:        a.Word,
			AttemptText: a.AttemptText,
			IsCorrect:   a.IsCorrect,
			StreakAfter: a.StreakAfter,
			AttemptedAt: a.AttemptedAt,
		})
	}
	return out
}
