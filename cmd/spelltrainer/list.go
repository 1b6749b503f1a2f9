package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"spelltrainer/internal/repository"
	"spelltrainer/internal/service"
	"spelltrainer/internal/term"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show due and mastered words with their streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := repository.NewWordRepository(a.wordFile())
			entries, err := repo.Load()
			if err != nil {
				return fmt.Errorf("failed to load words: %w", err)
			}

			today := a.today()
			due, mastered := service.NewVocabService().ListWords(entries, today)

			presenter := term.NewPresenter(os.Stdout, a.tr, true, false)
			presenter.Notice("TODAY", "today", today)
			if a.user != "" {
				presenter.Notice("USER", "user", a.user)
			}
			presenter.Notice("DATA_FILE", "path", repo.Path())
			fmt.Println()
			presenter.RenderList(today, due, mastered)
			return nil
		},
	}
}
