package main

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/wordlens/internal/config"
	"github.com/at-ishikawa/wordlens/internal/dictionary"
	"github.com/at-ishikawa/wordlens/internal/dictionary/freedict"
	"github.com/at-ishikawa/wordlens/internal/lookup"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newReader(cfg *config.Config) dictionary.Reader {
	return freedict.NewClient(
		cfg.Dictionaries.FreeDictionary.BaseURL,
		cfg.Dictionaries.FreeDictionary.Timeout,
	)
}

// lookupEntry submits word and returns the entry, or the lookup error.
func lookupEntry(ctx context.Context, reader dictionary.Reader, word string) (dictionary.Entry, error) {
	state := lookup.NewController(reader).Submit(ctx, word)
	if state.Err != nil {
		return dictionary.Entry{}, state.Err
	}
	return *state.Entry, nil
}
