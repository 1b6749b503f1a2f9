package service

import (
	"fmt"
	"strings"

	"spelltrainer/internal/models"
	"spelltrainer/internal/streak"
)

// VocabService handles adding and listing vocabulary words
type VocabService struct{}

// NewVocabService creates a new vocab service
func NewVocabService() *VocabService {
	return &VocabService{}
}

// AddWord inserts or updates a word. Whitespace is trimmed on both fields;
// an empty word is rejected with models.ErrInvalidInput. Re-adding an
// existing word replaces its phrase and keeps the review history.
func (s *VocabService) AddWord(entries map[string]*models.WordEntry, word, phrase string) error {
	word = strings.TrimSpace(word)
	phrase = strings.TrimSpace(phrase)

	if word == "" {
		return fmt.Errorf("word must not be empty: %w", models.ErrInvalidInput)
	}

	if existing, ok := entries[word]; ok {
		existing.Phrase = phrase
		return nil
	}

	entries[word] = &models.WordEntry{Word: word, Phrase: phrase}
	return nil
}

// ListWords partitions entries into due and mastered lists for display.
// Pure read; nothing is mutated.
func (s *VocabService) ListWords(entries map[string]*models.WordEntry, today string) (due, mastered []*models.WordEntry) {
	return streak.Partition(entries, today)
}
