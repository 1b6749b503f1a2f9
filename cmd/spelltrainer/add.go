package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"spelltrainer/internal/i18n"
	"spelltrainer/internal/models"
	"spelltrainer/internal/repository"
	"spelltrainer/internal/service"
	"spelltrainer/internal/term"
)

// exitWord ends add mode; it can never be a vocabulary word
const exitWord = "exitnow"

func newAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add words and example phrases interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := repository.NewWordRepository(a.wordFile())
			entries, err := repo.Load()
			if err != nil {
				return fmt.Errorf("failed to load words: %w", err)
			}

			input := term.NewInput(os.Stdin)
			if err := runAddLoop(cmd.Context(), a.tr, input, os.Stdout, entries); err != nil {
				return err
			}

			if err := repo.Save(entries); err != nil {
				return fmt.Errorf("failed to save words: %w", err)
			}
			presenter := term.NewPresenter(os.Stdout, a.tr, true, false)
			presenter.Notice("LEAVING_ADD")
			fmt.Printf("%s %s\n", a.tr.T("SAVED"), repo.Path())
			return nil
		},
	}
}

// runAddLoop prompts for word/phrase pairs until the exit word or an
// interrupt, confirming each word as it is added. Interrupting keeps what
// was entered so far; the caller still saves.
func runAddLoop(ctx context.Context, tr *i18n.Translator, input service.LineReader, out io.Writer, entries map[string]*models.WordEntry) error {
	vocab := service.NewVocabService()
	presenter := term.NewPresenter(out, tr, true, false)

	presenter.Headline("ADD_MODE_TITLE")
	for {
		fmt.Fprint(out, tr.T("WORD_PROMPT")+" ")
		word, err := input.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, models.ErrInterrupted) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		if strings.EqualFold(word, exitWord) {
			return nil
		}

		fmt.Fprint(out, tr.T("PHRASE_PROMPT")+" ")
		phrase, err := input.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, models.ErrInterrupted) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		if err := vocab.AddWord(entries, word, phrase); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", tr.T("SAVED"), word)
	}
}
