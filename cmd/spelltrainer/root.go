package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"spelltrainer/internal/config"
	"spelltrainer/internal/i18n"
)

// app carries the configuration shared by every subcommand. Flag values
// default from the environment and override it when set.
type app struct {
	cfg *config.Config

	user     string
	dataDir  string
	dataFile string
	speak    bool
	language string
	i18nFile string

	tr *i18n.Translator
}

func newRootCommand() *cobra.Command {
	a := &app{cfg: config.Load()}

	cmd := &cobra.Command{
		Use:   "spelltrainer",
		Short: "Daily spelling practice with per-word streaks",
		Long: `spelltrainer keeps a word list per user and quizzes the words that are
due each day. Spelling a word correctly on enough different days masters
it; one mistake resets that word's streak to zero.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := i18n.LoadCatalog(a.i18nFile)
			if err != nil {
				return fmt.Errorf("failed to load translations: %w", err)
			}
			a.tr = i18n.New(a.language, catalog)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.user, "user", "u", "", "user name; each user keeps a separate word file")
	flags.StringVar(&a.dataDir, "data-dir", a.cfg.DataDir, "directory holding the word files")
	flags.StringVarP(&a.dataFile, "file", "f", "", "word file path, overrides --user and --data-dir")
	flags.BoolVarP(&a.speak, "speak", "s", false, "speak prompts aloud and hide the words on screen")
	flags.StringVarP(&a.language, "language", "l", a.cfg.Language, "interface language (en or de)")
	flags.StringVar(&a.i18nFile, "i18n-file", a.cfg.LocalesPath, "CSV file overriding the built-in translations")

	cmd.AddCommand(
		newAddCommand(a),
		newReviewCommand(a),
		newListCommand(a),
		newHistoryCommand(a),
		newBackupCommand(a),
		newSetupTTSCommand(a),
	)
	return cmd
}

// wordFile resolves the word file for this run. An explicit --file wins;
// otherwise each user gets their own file under the data directory.
func (a *app) wordFile() string {
	if a.dataFile != "" {
		return a.dataFile
	}
	name := "words.csv"
	if a.user != "" {
		name = sanitizeUser(a.user) + ".csv"
	}
	return filepath.Join(a.dataDir, name)
}

// today returns the current date in the format word histories use
func (a *app) today() string {
	return time.Now().Format("2006-01-02")
}

// sanitizeUser reduces a user name to something safe in a filename
func sanitizeUser(user string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(user)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "user"
	}
	return b.String()
}
