// Package render turns a lookup.State into a view and writes it out.
package render

import (
	"github.com/at-ishikawa/wordlens/internal/dictionary"
	"github.com/at-ishikawa/wordlens/internal/lookup"
)

// MaxDefinitions is the number of definitions shown per meaning.
const MaxDefinitions = 2

const (
	MessageValidation = "Please enter a word."
	MessageNotFound   = "Word not found 😕"
	MessageTransport  = "Error fetching data. Please try again."
)

type Panel string

const (
	PanelEmpty   Panel = "empty"
	PanelLoading Panel = "loading"
	PanelError   Panel = "error"
	PanelEntry   Panel = "entry"
)

// View is exactly one of the four panels of the lookup page.
type View struct {
	Panel   Panel      `json:"panel" yaml:"panel"`
	Query   string     `json:"query,omitempty" yaml:"query,omitempty"`
	Message string     `json:"message,omitempty" yaml:"message,omitempty"`
	Entry   *EntryView `json:"entry,omitempty" yaml:"entry,omitempty"`
}

type EntryView struct {
	Word          string        `json:"word" yaml:"word"`
	Pronunciation *string       `json:"pronunciation,omitempty" yaml:"pronunciation,omitempty"`
	AudioURL      *string       `json:"audioUrl,omitempty" yaml:"audio_url,omitempty"`
	Meanings      []MeaningView `json:"meanings" yaml:"meanings"`
}

type MeaningView struct {
	PartOfSpeech string   `json:"partOfSpeech" yaml:"part_of_speech"`
	Definitions  []string `json:"definitions" yaml:"definitions"`
}

// Build picks the panel for state: loading first, then error, then entry.
func Build(state lookup.State) View {
	view := View{
		Query: state.Query,
	}
	switch {
	case state.Loading:
		view.Panel = PanelLoading
	case state.Err != nil:
		view.Panel = PanelError
		view.Message = ErrorMessage(state.Err)
	case state.Entry != nil:
		view.Panel = PanelEntry
		entryView := NewEntryView(*state.Entry)
		view.Entry = &entryView
	default:
		view.Panel = PanelEmpty
	}
	return view
}

// NewEntryView keeps the first phonetic and the first MaxDefinitions
// definitions of each meaning.
func NewEntryView(entry dictionary.Entry) EntryView {
	view := EntryView{
		Word:     entry.Word,
		Meanings: make([]MeaningView, 0, len(entry.Meanings)),
	}
	if phonetic, ok := entry.FirstPhonetic(); ok {
		if text, ok := phonetic.TextValue(); ok {
			view.Pronunciation = &text
		}
		if audio, ok := phonetic.AudioValue(); ok {
			view.AudioURL = &audio
		}
	}
	for _, meaning := range entry.Meanings {
		definitions := meaning.Definitions
		if len(definitions) > MaxDefinitions {
			definitions = definitions[:MaxDefinitions]
		}
		meaningView := MeaningView{
			PartOfSpeech: meaning.PartOfSpeech,
			Definitions:  make([]string, 0, len(definitions)),
		}
		for _, definition := range definitions {
			meaningView.Definitions = append(meaningView.Definitions, definition.Definition)
		}
		view.Meanings = append(view.Meanings, meaningView)
	}
	return view
}

// ErrorMessage maps err onto one of the three user-facing messages.
func ErrorMessage(err error) string {
	kind, ok := dictionary.KindOf(err)
	if !ok {
		return ""
	}
	switch kind {
	case dictionary.KindValidation:
		return MessageValidation
	case dictionary.KindNotFound:
		return MessageNotFound
	default:
		return MessageTransport
	}
}
