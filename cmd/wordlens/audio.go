package main

import (
	"fmt"

	"github.com/at-ishikawa/wordlens/internal/audio"
	"github.com/spf13/cobra"
)

func newAudioCommand() *cobra.Command {
	var outputDirectory string

	command := &cobra.Command{
		Use:   "audio <word>",
		Short: "Download the pronunciation audio of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outputDirectory == "" {
				outputDirectory = cfg.Outputs.AudioDirectory
			}

			entry, err := lookupEntry(cmd.Context(), newReader(cfg), args[0])
			if err != nil {
				return fmt.Errorf("lookupEntry > %w", err)
			}

			downloader := audio.NewDownloader(outputDirectory)
			defer func() {
				_ = downloader.Close()
			}()
			path, err := downloader.Download(cmd.Context(), entry)
			if err != nil {
				return fmt.Errorf("downloader.Download > %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	command.Flags().StringVarP(&outputDirectory, "output", "o", "", "Output directory. Defaults to outputs.audio_directory")
	return command
}
