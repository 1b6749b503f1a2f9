package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"spelltrainer/internal/models"
)

// csvHeader is the column layout of the per-user word file.
var csvHeader = []string{"word", "phrase", "history"}

// WordRepository persists a user's word entries as a CSV file. The whole
// file is loaded at startup, mutated in memory and overwritten on save;
// concurrent runs against the same file are out of scope.
type WordRepository struct {
	path string
}

// NewWordRepository creates a new word repository for the given file path
func NewWordRepository(path string) *WordRepository {
	return &WordRepository{path: path}
}

// Path returns the backing file path
func (r *WordRepository) Path() string {
	return r.path
}

// Load reads all word entries from the file. A missing file yields an empty
// mapping. Rows without a word are skipped rather than failing the load.
func (r *WordRepository) Load() (map[string]*models.WordEntry, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*models.WordEntry{}, nil
		}
		return nil, fmt.Errorf("failed to open word file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read word file: %w", err)
	}

	entries := make(map[string]*models.WordEntry)
	for i, record := range records {
		// First row is the header
		if i == 0 {
			continue
		}

		word := ""
		if len(record) > 0 {
			word = strings.TrimSpace(record[0])
		}
		if word == "" {
			continue
		}

		phrase := ""
		if len(record) > 1 {
			phrase = strings.TrimSpace(record[1])
		}

		var history []string
		if len(record) > 2 && strings.TrimSpace(record[2]) != "" {
			for _, date := range strings.Split(strings.TrimSpace(record[2]), models.DateSeparator) {
				if date != "" {
					history = append(history, date)
				}
			}
		}

		entries[word] = &models.WordEntry{Word: word, Phrase: phrase, History: history}
	}

	return entries, nil
}

// Save writes all entries back to the file, sorted case-insensitively by
// word so diffs stay deterministic. The file is written to a temp file and
// renamed into place, so an interrupt never leaves a partially written file.
func (r *WordRepository) Save(entries map[string]*models.WordEntry) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".words-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	words := make([]string, 0, len(entries))
	for word := range entries {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		return strings.ToLower(words[i]) < strings.ToLower(words[j])
	})

	for _, word := range words {
		e := entries[word]
		record := []string{e.Word, e.Phrase, strings.Join(e.History, models.DateSeparator)}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush word file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace word file: %w", err)
	}

	return nil
}
