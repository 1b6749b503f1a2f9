package database

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDialect implements Dialect for SQLite
type SQLiteDialect struct{}

// NewSQLiteDialect creates a new SQLite dialect
func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{}
}

func (d *SQLiteDialect) DriverName() string {
	return "sqlite3"
}

func (d *SQLiteDialect) DSN(config DialectConfig) string {
	return config.Path
}

func (d *SQLiteDialect) RewriteQuery(query string) string {
	// SQLite uses ? placeholders, no rewrite needed
	return query
}

func (d *SQLiteDialect) ConfigureConnection(db *sql.DB) error {
	// A single CLI process never needs more than one connection
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
		return err
	}

	return nil
}

func (d *SQLiteDialect) SchemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS practice_sessions (
			id TEXT PRIMARY KEY,
			user_name TEXT NOT NULL,
			started_at DATETIME NOT NULL,
			completed_at DATETIME,
			total_words INTEGER NOT NULL DEFAULT 0,
			correct_words INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS word_attempts (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL REFERENCES practice_sessions(id),
			word TEXT NOT NULL,
			attempt_text TEXT NOT NULL,
			is_correct BOOLEAN NOT NULL,
			streak_after INTEGER NOT NULL,
			attempted_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_word_attempts_session ON word_attempts(session_id);`,
	}
}
