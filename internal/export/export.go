// Package export writes a looked up entry to markdown and, optionally, PDF.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/at-ishikawa/wordlens/internal/assets"
	"github.com/at-ishikawa/wordlens/internal/dictionary"
	"github.com/at-ishikawa/wordlens/internal/render"
)

type Exporter struct {
	outputDirectory string
	templatePath    string
}

func NewExporter(outputDirectory, templatePath string) *Exporter {
	return &Exporter{
		outputDirectory: outputDirectory,
		templatePath:    templatePath,
	}
}

// WriteMarkdown writes entry to <outputDirectory>/<word>.md and returns its path.
func (e *Exporter) WriteMarkdown(entry dictionary.Entry) (string, error) {
	if err := os.MkdirAll(e.outputDirectory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", e.outputDirectory, err)
	}

	markdownPath := filepath.Join(e.outputDirectory, fileName(entry.Word)+".md")
	file, err := os.Create(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", markdownPath, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := assets.WriteEntry(file, e.templatePath, newEntryTemplate(entry)); err != nil {
		return "", fmt.Errorf("assets.WriteEntry() > %w", err)
	}
	return markdownPath, nil
}

func newEntryTemplate(entry dictionary.Entry) assets.EntryTemplate {
	view := render.NewEntryView(entry)
	data := assets.EntryTemplate{
		Word:       view.Word,
		Meanings:   make([]assets.EntryMeaning, 0, len(view.Meanings)),
		SourceURLs: entry.SourceURLs,
	}
	if view.Pronunciation != nil {
		data.Pronunciation = *view.Pronunciation
	}
	if view.AudioURL != nil {
		data.AudioURL = *view.AudioURL
	}
	for i, meaning := range view.Meanings {
		data.Meanings = append(data.Meanings, assets.EntryMeaning{
			PartOfSpeech: meaning.PartOfSpeech,
			Definitions:  meaning.Definitions,
			Synonyms:     entry.Meanings[i].Synonyms,
		})
	}
	return data
}

func fileName(word string) string {
	name := strings.ToLower(strings.TrimSpace(word))
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ':
			return '_'
		}
		return r
	}, name)
	if name == "" {
		return "entry"
	}
	return name
}
