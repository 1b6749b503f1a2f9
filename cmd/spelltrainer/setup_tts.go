package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"spelltrainer/internal/term"
)

func newSetupTTSCommand(a *app) *cobra.Command {
	var install bool

	cmd := &cobra.Command{
		Use:   "setup-tts",
		Short: "Install or explain the speech engine used by --speak",
		RunE: func(cmd *cobra.Command, args []string) error {
			presenter := term.NewPresenter(os.Stdout, a.tr, true, false)

			if !install {
				presenter.Notice("TTS_SETUP_INSTRUCTIONS")
				fmt.Println("  sudo apt-get install -y speech-dispatcher espeak-ng")
				return nil
			}

			presenter.Notice("TTS_SETUP_INSTALLING")
			run := exec.CommandContext(cmd.Context(), "sudo", "apt-get", "install", "-y", "speech-dispatcher", "espeak-ng")
			run.Stdout = os.Stdout
			run.Stderr = os.Stderr
			run.Stdin = os.Stdin
			if err := run.Run(); err != nil {
				return fmt.Errorf("failed to install speech engine: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&install, "install", false, "run the install command instead of printing it")
	return cmd
}
