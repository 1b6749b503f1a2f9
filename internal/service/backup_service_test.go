package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"spelltrainer/internal/models"
	"spelltrainer/internal/repository"
)

func TestExportWordsSortedCaseInsensitively(t *testing.T) {
	dir := t.TempDir()

	words := repository.NewWordRepository(filepath.Join(dir, "words.csv"))
	entries := entryMap(
		&models.WordEntry{Word: "zebra"},
		&models.WordEntry{Word: "Apple", History: []string{"2025-06-09"}},
		&models.WordEntry{Word: "mango"},
	)
	if err := words.Save(entries); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	output := filepath.Join(dir, "backup.json")
	if err := NewBackupService(words, nil).Export(output); err != nil {
		t.Fatalf("Export() returned error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		t.Fatalf("unmarshaling backup: %v", err)
	}

	want := []string{"Apple", "mango", "zebra"}
	if len(backup.Words) != len(want) {
		t.Fatalf("backup has %d words, want %d", len(backup.Words), len(want))
	}
	for i, w := range want {
		if backup.Words[i].Word != w {
			t.Errorf("words[%d] = %q, want %q", i, backup.Words[i].Word, w)
		}
	}

	if backup.Sessions == nil || len(backup.Sessions) != 0 {
		t.Errorf("sessions = %v, want empty list without a history store", backup.Sessions)
	}
}
