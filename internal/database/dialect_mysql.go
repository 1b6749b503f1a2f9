package database

import (
	"database/sql"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct{}

// NewMySQLDialect creates a new MySQL dialect
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

func (d *MySQLDialect) DSN(config DialectConfig) string {
	// The driver needs parseTime to scan DATETIME columns into time.Time
	if strings.Contains(config.URL, "parseTime") {
		return config.URL
	}
	sep := "?"
	if strings.Contains(config.URL, "?") {
		sep = "&"
	}
	return config.URL + sep + "parseTime=true"
}

func (d *MySQLDialect) RewriteQuery(query string) string {
	// MySQL uses ? placeholders like SQLite, no rewrite needed
	return query
}

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Ensure foreign key checks are enabled
	if _, err := db.Exec("SET FOREIGN_KEY_CHECKS = 1;"); err != nil {
		return err
	}

	return nil
}

func (d *MySQLDialect) SchemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS practice_sessions (
			id CHAR(36) PRIMARY KEY,
			user_name VARCHAR(255) NOT NULL,
			started_at DATETIME(6) NOT NULL,
			completed_at DATETIME(6),
			total_words INT NOT NULL DEFAULT 0,
			correct_words INT NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS word_attempts (
			id CHAR(36) PRIMARY KEY,
			session_id CHAR(36) NOT NULL,
			word VARCHAR(255) NOT NULL,
			attempt_text TEXT NOT NULL,
			is_correct BOOLEAN NOT NULL,
			streak_after INT NOT NULL,
			attempted_at DATETIME(6) NOT NULL,
			FOREIGN KEY (session_id) REFERENCES practice_sessions(id),
			INDEX idx_word_attempts_session (session_id)
		);`,
	}
}
