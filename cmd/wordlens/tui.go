package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/at-ishikawa/wordlens/internal/lookup"
	"github.com/at-ishikawa/wordlens/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive lookup page in the terminal",
		Long: `Launch the interactive lookup page in the terminal.

Controls:
  Enter   Look up the word
  Esc     Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// The terminal belongs to the program while it runs.
			closeLog, err := redirectLogger(debugMode)
			if err != nil {
				return err
			}
			defer closeLog()

			controller := lookup.NewController(newReader(cfg))
			program := tea.NewProgram(
				tui.New(cmd.Context(), controller),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("program.Run > %w", err)
			}
			return nil
		},
	}
}

// redirectLogger sends logs to a file under the temp dir in debug mode and
// discards them otherwise.
func redirectLogger(debugMode bool) (func(), error) {
	if !debugMode {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return func() {}, nil
	}

	logPath := filepath.Join(os.TempDir(), "wordlens-tui.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("os.OpenFile(%s) > %w", logPath, err)
	}
	setupLogger(file, true)
	return func() {
		_ = file.Close()
	}, nil
}
