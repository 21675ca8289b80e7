package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/at-ishikawa/wordlens/internal/config"
	"github.com/at-ishikawa/wordlens/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	dictionary := testutil.NewFreeDictionaryServer(t, map[string]string{
		"hello": `[{"word": "hello", "phonetics": [], "meanings": [{"partOfSpeech": "noun", "definitions": [{"definition": "A greeting."}]}]}]`,
	})

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: 8080,
			CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		},
		Dictionaries: config.DictionariesConfig{
			FreeDictionary: config.FreeDictionaryConfig{BaseURL: dictionary.URL},
		},
	}
	handler, err := newHandler(cfg)
	require.NoError(t, err)
	server := httptest.NewServer(handler)
	defer server.Close()

	t.Run("page", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, server.URL+"/?word=hello", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://localhost:3000")

		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "http://localhost:3000", res.Header.Get("Access-Control-Allow-Origin"))
		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "<li>A greeting.</li>")
	})

	t.Run("unknown word", func(t *testing.T) {
		res, err := http.Get(server.URL + "/api/lookup?word=qwzxv")
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("preflight", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/lookup", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://localhost:3000")

		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer res.Body.Close()
		assert.Equal(t, http.StatusNoContent, res.StatusCode)
	})
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()
	assert.Equal(t, "wordlens-server", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("config"))
	assert.NotNil(t, cmd.Flags().Lookup("debug"))
}
