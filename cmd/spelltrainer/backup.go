package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"spelltrainer/internal/database"
	"spelltrainer/internal/repository"
	"spelltrainer/internal/service"
	"spelltrainer/internal/term"
)

func newBackupCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export the word file and practice history to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			words := repository.NewWordRepository(a.wordFile())

			// A broken history store still allows backing up the words
			var history *repository.HistoryRepository
			if db, err := database.InitializeWithConfig(a.cfg); err != nil {
				log.Printf("Warning: failed to open history store: %v", err)
			} else {
				defer db.Close()
				if err := db.EnsureSchema(); err != nil {
					log.Printf("Warning: failed to prepare history store: %v", err)
				} else {
					history = repository.NewHistoryRepository(db)
				}
			}

			if err := service.NewBackupService(words, history).Export(output); err != nil {
				return fmt.Errorf("backup failed: %w", err)
			}

			term.NewPresenter(os.Stdout, a.tr, true, false).Notice("BACKUP_WRITTEN", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "spelltrainer-backup.json", "backup file to write")
	return cmd
}
