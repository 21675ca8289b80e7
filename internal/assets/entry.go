package assets

import (
	"fmt"
	"io"
)

// EntryTemplate is the data of the markdown export template.
type EntryTemplate struct {
	Word          string
	Pronunciation string
	AudioURL      string
	Meanings      []EntryMeaning
	SourceURLs    []string
}

type EntryMeaning struct {
	PartOfSpeech string
	Definitions  []string
	Synonyms     []string
}

func WriteEntry(output io.Writer, templatePath string, templateData EntryTemplate) error {
	tmpl, err := ParseEntryTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseEntryTemplate() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
