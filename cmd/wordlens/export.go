package main

import (
	"fmt"

	"github.com/at-ishikawa/wordlens/internal/export"
	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	var outputDirectory string
	var pdf bool

	command := &cobra.Command{
		Use:   "export <word>",
		Short: "Export the entry of a word as markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outputDirectory == "" {
				outputDirectory = cfg.Outputs.ExportDirectory
			}

			entry, err := lookupEntry(cmd.Context(), newReader(cfg), args[0])
			if err != nil {
				return fmt.Errorf("lookupEntry > %w", err)
			}

			markdownPath, err := export.NewExporter(outputDirectory, cfg.Templates.MarkdownTemplate).WriteMarkdown(entry)
			if err != nil {
				return fmt.Errorf("exporter.WriteMarkdown > %w", err)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), markdownPath); err != nil {
				return err
			}
			if !pdf {
				return nil
			}

			pdfPath, err := export.ConvertMarkdownToPDF(markdownPath)
			if err != nil {
				return fmt.Errorf("export.ConvertMarkdownToPDF > %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pdfPath)
			return err
		},
	}
	flags := command.Flags()
	flags.StringVarP(&outputDirectory, "output", "o", "", "Output directory. Defaults to outputs.export_directory")
	flags.BoolVar(&pdf, "pdf", false, "Also convert the markdown to PDF")
	return command
}
