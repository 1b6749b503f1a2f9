package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spelltrainer/internal/database"
	"spelltrainer/internal/repository"
	"spelltrainer/internal/term"
)

func newHistoryCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent practice sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.InitializeWithConfig(a.cfg)
			if err != nil {
				return fmt.Errorf("failed to open history store: %w", err)
			}
			defer db.Close()
			if err := db.EnsureSchema(); err != nil {
				return fmt.Errorf("failed to prepare history store: %w", err)
			}

			sessions, err := repository.NewHistoryRepository(db).RecentSessions(a.user, limit)
			if err != nil {
				return fmt.Errorf("failed to load sessions: %w", err)
			}

			presenter := term.NewPresenter(os.Stdout, a.tr, true, false)
			if len(sessions) == 0 {
				presenter.Notice("HISTORY_NONE")
				return nil
			}

			presenter.Headline("HISTORY_TITLE")
			for _, s := range sessions {
				status := "unfinished"
				if s.CompletedAt != nil {
					status = fmt.Sprintf("%d/%d (%.0f%%)", s.CorrectWords, s.TotalWords, s.Accuracy()*100)
				}
				fmt.Printf("  %s  %s  %s\n", s.StartedAt.Format("2006-01-02 15:04"), s.User, status)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of sessions to show")
	return cmd
}
