package dictionary

// Entry is the dictionary record for one word as returned by a lookup service.
// It is displayed as received and never mutated.
type Entry struct {
	Word       string     `json:"word" yaml:"word"`
	Phonetic   *string    `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`
	Phonetics  []Phonetic `json:"phonetics" yaml:"phonetics"`
	Meanings   []Meaning  `json:"meanings" yaml:"meanings"`
	SourceURLs []string   `json:"sourceUrls,omitempty" yaml:"source_urls,omitempty"`
}

// Phonetic is one pronunciation of the word. Either field may be absent.
type Phonetic struct {
	Text  *string `json:"text,omitempty" yaml:"text,omitempty"`
	Audio *string `json:"audio,omitempty" yaml:"audio,omitempty"`
}

// Meaning groups definitions under one part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech" yaml:"part_of_speech"`
	Definitions  []Definition `json:"definitions" yaml:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
}

type Definition struct {
	Definition string  `json:"definition" yaml:"definition"`
	Example    *string `json:"example,omitempty" yaml:"example,omitempty"`
}

// FirstPhonetic returns the first pronunciation, if the entry has any.
func (e Entry) FirstPhonetic() (Phonetic, bool) {
	if len(e.Phonetics) == 0 {
		return Phonetic{}, false
	}
	return e.Phonetics[0], true
}

func (p Phonetic) TextValue() (string, bool) {
	if p.Text == nil {
		return "", false
	}
	return *p.Text, true
}

func (p Phonetic) AudioValue() (string, bool) {
	if p.Audio == nil {
		return "", false
	}
	return *p.Audio, true
}

// OptionalString converts an API string into an optional value; empty means absent.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
