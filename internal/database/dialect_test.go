package database

import (
	"strings"
	"testing"
)

func TestDialectDriverNames(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		want    string
	}{
		{name: "sqlite", dialect: NewSQLiteDialect(), want: "sqlite3"},
		{name: "postgres", dialect: NewPostgresDialect(), want: "postgres"},
		{name: "mysql", dialect: NewMySQLDialect(), want: "mysql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.DriverName(); got != tt.want {
				t.Errorf("DriverName() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no change",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT * FROM practice_sessions WHERE id = ?",
			expected: "SELECT * FROM practice_sessions WHERE id = ?",
		},
		{
			name:     "PostgreSQL single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT * FROM practice_sessions WHERE id = ?",
			expected: "SELECT * FROM practice_sessions WHERE id = $1",
		},
		{
			name:     "PostgreSQL multiple placeholders",
			dialect:  NewPostgresDialect(),
			query:    "INSERT INTO word_attempts (word, attempt_text) VALUES (?, ?)",
			expected: "INSERT INTO word_attempts (word, attempt_text) VALUES ($1, $2)",
		},
		{
			name:     "MySQL no change",
			dialect:  NewMySQLDialect(),
			query:    "UPDATE practice_sessions SET total_words = ?, correct_words = ? WHERE id = ?",
			expected: "UPDATE practice_sessions SET total_words = ?, correct_words = ? WHERE id = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dialect.RewriteQuery(tt.query)
			if result != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMySQLDSNParseTime(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "no query string",
			url:  "user:pass@tcp(localhost:3306)/spelltrainer",
			want: "user:pass@tcp(localhost:3306)/spelltrainer?parseTime=true",
		},
		{
			name: "existing query string",
			url:  "user:pass@tcp(localhost:3306)/spelltrainer?charset=utf8mb4",
			want: "user:pass@tcp(localhost:3306)/spelltrainer?charset=utf8mb4&parseTime=true",
		},
		{
			name: "parseTime already set",
			url:  "user:pass@tcp(localhost:3306)/spelltrainer?parseTime=true",
			want: "user:pass@tcp(localhost:3306)/spelltrainer?parseTime=true",
		},
	}

	dialect := NewMySQLDialect()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dialect.DSN(DialectConfig{URL: tt.url})
			if got != tt.want {
				t.Errorf("DSN() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSchemaStatementsCoverBothTables(t *testing.T) {
	dialects := []struct {
		name    string
		dialect Dialect
	}{
		{name: "sqlite", dialect: NewSQLiteDialect()},
		{name: "postgres", dialect: NewPostgresDialect()},
		{name: "mysql", dialect: NewMySQLDialect()},
	}

	for _, tt := range dialects {
		t.Run(tt.name, func(t *testing.T) {
			joined := strings.Join(tt.dialect.SchemaStatements(), "\n")
			for _, table := range []string{"practice_sessions", "word_attempts"} {
				if !strings.Contains(joined, table) {
					t.Errorf("schema for %s missing table %s", tt.name, table)
				}
			}
		})
	}
}
