package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"spelltrainer/internal/database"
	"spelltrainer/internal/models"
)

// HistoryRepository handles practice session database operations
type HistoryRepository struct {
	db *database.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *database.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// CreateSession inserts a new practice session
func (r *HistoryRepository) CreateSession(session *models.PracticeSession) error {
	query := `
		INSERT INTO practice_sessions (id, user_name, started_at, total_words, correct_words)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, session.ID, session.User, session.StartedAt,
		session.TotalWords, session.CorrectWords)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// RecordAttempt inserts a single word attempt
func (r *HistoryRepository) RecordAttempt(attempt *models.WordAttempt) error {
	query := `
		INSERT INTO word_attempts (id, session_id, word, attempt_text, is_correct, streak_after, attempted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, attempt.ID, attempt.SessionID, attempt.Word,
		attempt.AttemptText, attempt.IsCorrect, attempt.StreakAfter, attempt.AttemptedAt)
	if err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	return nil
}

// CompleteSession marks a session as complete with its final counts
func (r *HistoryRepository) CompleteSession(sessionID string, totalWords, correctWords int, completedAt time.Time) error {
	query := `
		UPDATE practice_sessions
		SET completed_at = ?, total_words = ?, correct_words = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query, completedAt, totalWords, correctWords, sessionID)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check completed session: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}

	return nil
}

// GetSessionByID retrieves a practice session by ID
func (r *HistoryRepository) GetSessionByID(sessionID string) (*models.PracticeSession, error) {
	query := `
		SELECT id, user_name, started_at, completed_at, total_words, correct_words
		FROM practice_sessions
		WHERE id = ?
	`

	session := &models.PracticeSession{}
	var completedAt sql.NullTime

	err := r.db.QueryRow(query, sessionID).Scan(
		&session.ID,
		&session.User,
		&session.StartedAt,
		&completedAt,
		&session.TotalWords,
		&session.CorrectWords,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if completedAt.Valid {
		session.CompletedAt = &completedAt.Time
	}

	return session, nil
}

// RecentSessions retrieves the most recent practice sessions for a user,
// newest first
func (r *HistoryRepository) RecentSessions(user string, limit int) ([]models.PracticeSession, error) {
	query := `
		SELECT id, user_name, started_at, completed_at, total_words, correct_words
		FROM practice_sessions
		WHERE user_name = ?
		ORDER BY started_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, user, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.PracticeSession
	for rows.Next() {
		var session models.PracticeSession
		var completedAt sql.NullTime

		if err := rows.Scan(
			&session.ID,
			&session.User,
			&session.StartedAt,
			&completedAt,
			&session.TotalWords,
			&session.CorrectWords,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		if completedAt.Valid {
			session.CompletedAt = &completedAt.Time
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

// SessionAttempts retrieves all attempts for a session, oldest first
func (r *HistoryRepository) SessionAttempts(sessionID string) ([]models.WordAttempt, error) {
	query := `
		SELECT id, session_id, word, attempt_text, is_correct, streak_after, attempted_at
		FROM word_attempts
		WHERE session_id = ?
		ORDER BY attempted_at
	`

	rows, err := r.db.Query(query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []models.WordAttempt
	for rows.Next() {
		var attempt models.WordAttempt
		if err := rows.Scan(
			&attempt.ID,
			&attempt.SessionID,
			&attempt.Word,
			&attempt.AttemptText,
			&attempt.IsCorrect,
			&attempt.StreakAfter,
			&attempt.AttemptedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, attempt)
	}

	return attempts, rows.Err()
}

// AllSessions retrieves every recorded session, oldest first. Used by the
// backup export.
func (r *HistoryRepository) AllSessions() ([]models.PracticeSession, error) {
	query := `
		SELECT id, user_name, started_at, completed_at, total_words, correct_words
		FROM practice_sessions
		ORDER BY started_at
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.PracticeSession
	for rows.Next() {
		var session models.PracticeSession
		var completedAt sql.NullTime

		if err := rows.Scan(
			&session.ID,
			&session.User,
			&session.StartedAt,
			&completedAt,
			&session.TotalWords,
			&session.CorrectWords,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}

		if completedAt.Valid {
			session.CompletedAt = &completedAt.Time
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}
