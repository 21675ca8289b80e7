package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

type Renderer interface {
	Render(w io.Writer, view View) error
}

var (
	_ Renderer = (*TextRenderer)(nil)
	_ Renderer = JSONRenderer{}
	_ Renderer = YAMLRenderer{}
)

// TextRenderer writes a view for a terminal.
type TextRenderer struct {
	bold   *color.Color
	muted  *color.Color
	errorC *color.Color
	accent *color.Color
}

func NewTextRenderer(noColor bool) *TextRenderer {
	r := &TextRenderer{
		bold:   color.New(color.Bold),
		muted:  color.New(color.FgHiBlack),
		errorC: color.New(color.FgRed),
		accent: color.New(color.FgBlue, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{r.bold, r.muted, r.errorC, r.accent} {
			c.DisableColor()
		}
	}
	return r
}

func (r *TextRenderer) Render(w io.Writer, view View) error {
	switch view.Panel {
	case PanelLoading:
		if _, err := r.muted.Fprintln(w, "Loading..."); err != nil {
			return fmt.Errorf("muted.Fprintln > %w", err)
		}
	case PanelError:
		if _, err := r.errorC.Fprintln(w, view.Message); err != nil {
			return fmt.Errorf("errorC.Fprintln > %w", err)
		}
	case PanelEntry:
		return r.renderEntry(w, *view.Entry)
	default:
		if _, err := r.muted.Fprintln(w, "Enter a word"); err != nil {
			return fmt.Errorf("muted.Fprintln > %w", err)
		}
	}
	return nil
}

func (r *TextRenderer) renderEntry(w io.Writer, entry EntryView) error {
	var b strings.Builder
	_, _ = r.bold.Fprintln(&b, Capitalize(entry.Word))
	if entry.Pronunciation != nil {
		_, _ = r.muted.Fprintf(&b, "Pronunciation: %s\n", *entry.Pronunciation)
	}
	if entry.AudioURL != nil {
		_, _ = r.muted.Fprintf(&b, "Audio: %s\n", *entry.AudioURL)
	}
	for _, meaning := range entry.Meanings {
		b.WriteString("\n")
		_, _ = r.accent.Fprintln(&b, meaning.PartOfSpeech)
		for _, definition := range meaning.Definitions {
			fmt.Fprintf(&b, "  • %s\n", definition)
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("io.WriteString > %w", err)
	}
	return nil
}

type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, view View) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(view); err != nil {
		return fmt.Errorf("encoder.Encode > %w", err)
	}
	return nil
}

type YAMLRenderer struct{}

func (YAMLRenderer) Render(w io.Writer, view View) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(view); err != nil {
		return fmt.Errorf("encoder.Encode > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close > %w", err)
	}
	return nil
}

// Capitalize upper-cases the first letter of word.
func Capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(first)) + word[size:]
}
