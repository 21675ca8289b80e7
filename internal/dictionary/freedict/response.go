// https://dictionaryapi.dev/
package freedict

import (
	"github.com/at-ishikawa/wordlens/internal/dictionary"
)

// Response is one element of the array the API returns, one per etymology.
type Response struct {
	Word       string     `json:"word"`
	Phonetic   string     `json:"phonetic"`
	Phonetics  []Phonetic `json:"phonetics"`
	Meanings   []Meaning  `json:"meanings"`
	SourceURLs []string   `json:"sourceUrls"`
}

type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
}

type Definition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// ToEntry converts the wire shape into a dictionary.Entry.
// Empty strings become absent optional fields.
func (r Response) ToEntry() dictionary.Entry {
	entry := dictionary.Entry{
		Word:       r.Word,
		Phonetic:   dictionary.OptionalString(r.Phonetic),
		Phonetics:  make([]dictionary.Phonetic, 0, len(r.Phonetics)),
		Meanings:   make([]dictionary.Meaning, 0, len(r.Meanings)),
		SourceURLs: r.SourceURLs,
	}
	for _, phonetic := range r.Phonetics {
		entry.Phonetics = append(entry.Phonetics, dictionary.Phonetic{
			Text:  dictionary.OptionalString(phonetic.Text),
			Audio: dictionary.OptionalString(phonetic.Audio),
		})
	}
	for _, meaning := range r.Meanings {
		definitions := make([]dictionary.Definition, 0, len(meaning.Definitions))
		for _, definition := range meaning.Definitions {
			definitions = append(definitions, dictionary.Definition{
				Definition: definition.Definition,
				Example:    dictionary.OptionalString(definition.Example),
			})
		}
		entry.Meanings = append(entry.Meanings, dictionary.Meaning{
			PartOfSpeech: meaning.PartOfSpeech,
			Definitions:  definitions,
			Synonyms:     meaning.Synonyms,
		})
	}
	return entry
}
