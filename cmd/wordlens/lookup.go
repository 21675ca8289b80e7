package main

import (
	"fmt"

	"github.com/at-ishikawa/wordlens/internal/lookup"
	"github.com/at-ishikawa/wordlens/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Format string

func (f *Format) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "format"
}

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	_          pflag.Value = (*Format)(nil)
	allFormats             = []Format{FormatText, FormatJSON, FormatYAML}
)

func (f Format) renderer(noColor bool) render.Renderer {
	switch f {
	case FormatJSON:
		return render.JSONRenderer{}
	case FormatYAML:
		return render.YAMLRenderer{}
	default:
		return render.NewTextRenderer(noColor)
	}
}

func newLookupCommand() *cobra.Command {
	format := FormatText
	var noColor bool

	command := &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a word and print its entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			state := lookup.NewController(newReader(cfg)).Submit(cmd.Context(), args[0])
			if err := format.renderer(noColor).Render(cmd.OutOrStdout(), render.Build(state)); err != nil {
				return fmt.Errorf("renderer.Render > %w", err)
			}
			if state.Err != nil {
				return fmt.Errorf("lookup > %w", state.Err)
			}
			return nil
		},
	}
	flags := command.Flags()
	flags.Var(&format, "format", fmt.Sprintf("Output format. Possible values are %v", allFormats))
	flags.BoolVar(&noColor, "no-color", false, "Disable colored text output")
	return command
}
