package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"spelltrainer/internal/audio"
	"spelltrainer/internal/database"
	"spelltrainer/internal/repository"
	"spelltrainer/internal/service"
	"spelltrainer/internal/term"
)

func newReviewCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Quiz the words that are due today",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := repository.NewWordRepository(a.wordFile())
			entries, err := repo.Load()
			if err != nil {
				return fmt.Errorf("failed to load words: %w", err)
			}

			presenter := term.NewPresenter(os.Stdout, a.tr, true, a.speak)
			speaker := audio.New(a.speak, a.tr.Language())
			input := term.NewInput(os.Stdin)

			// History recording is best-effort; review works without it
			var recorder service.AttemptRecorder
			if db, dbErr := database.InitializeWithConfig(a.cfg); dbErr != nil {
				log.Printf("Warning: failed to open history store: %v", dbErr)
				presenter.Notice("HISTORY_UNAVAILABLE")
			} else {
				defer db.Close()
				if schemaErr := db.EnsureSchema(); schemaErr != nil {
					log.Printf("Warning: failed to prepare history store: %v", schemaErr)
					presenter.Notice("HISTORY_UNAVAILABLE")
				} else {
					recorder = repository.NewHistoryRepository(db)
				}
			}

			// The greeting blocks so the first word prompt cannot cut it off
			if a.speak && a.user != "" {
				speaker.SpeakWait(a.tr.T("WELCOME")+" "+a.user, a.tr.T("LETSGO"))
			}

			svc := service.NewReviewService(presenter, speaker, input, recorder, a.tr, a.user)
			summary, err := svc.Run(cmd.Context(), entries, a.today(), limit)
			speaker.Stop()
			if err != nil {
				return err
			}

			// Save even after an interrupt so recorded outcomes survive
			if err := repo.Save(entries); err != nil {
				return fmt.Errorf("failed to save words: %w", err)
			}
			if summary.Outcome == service.OutcomeInterrupted {
				fmt.Println()
				presenter.Notice("CANCELLED")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum words per session, 0 means all due words")
	return cmd
}
