// Package testutil provides shared test helpers for config files and a fake
// dictionary API.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// NotFoundBody is what the dictionary API answers for an unknown word.
const NotFoundBody = `{"title":"No Definitions Found","message":"Sorry pal, we couldn't find definitions for the word you were looking for.","resolution":"You can try the search again at later time or head to the web instead."}`

// SetupTestConfig creates a config file pointing at baseURL and the output
// directories it names. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	dirs := []string{
		filepath.Join("outputs", "audio"),
		filepath.Join("outputs", "export"),
	}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`dictionaries:
  free_dictionary:
    base_url: %s
    timeout: 5s
outputs:
  audio_directory: %s
  export_directory: %s
`,
		baseURL,
		filepath.Join(tmpDir, "outputs", "audio"),
		filepath.Join(tmpDir, "outputs", "export"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// NewFreeDictionaryServer serves bodies keyed by word the way the dictionary
// API does, and answers 404 for any other word. It is closed on cleanup.
func NewFreeDictionaryServer(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		word := strings.TrimPrefix(r.URL.Path, "/")
		body, ok := bodies[word]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(NotFoundBody))
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}
