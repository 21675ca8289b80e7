package dictionary

import (
	"context"
)

//go:generate mockgen -source=reader.go -destination=../mocks/dictionary/mock_reader.go -package=mock_dictionary

// Reader looks up a single word. Implementations return a *LookupError
// classifying any failure.
type Reader interface {
	Lookup(ctx context.Context, word string) (Entry, error)
}
