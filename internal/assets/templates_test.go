package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageTemplate(t *testing.T) {
	tests := []struct {
		name         string
		templatePath string

		wantTemplateName string
		templateData     any
		wantContains     []string
	}{
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "custom.html.go.tmpl")
				content := `<p>{{ .Query }}</p>`
				require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
				return templatePath
			}(t),
			wantTemplateName: "custom.html.go.tmpl",
			templateData:     struct{ Query string }{Query: "<hello>"},
			wantContains:     []string{"<p>&lt;hello&gt;</p>"},
		},
		{
			name: "falls back to embedded template when filesystem template is invalid",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "broken.html.go.tmpl")
				require.NoError(t, os.WriteFile(templatePath, []byte(`{{ if }`), 0644))
				return templatePath
			}(t),
			wantTemplateName: pageTemplateName,
			templateData:     struct{ Panel, Query string }{Panel: "empty"},
			wantContains:     []string{`placeholder="Enter a word"`},
		},
		{
			name:             "uses embedded template when file doesn't exist",
			templatePath:     "/non/existent/page.html.go.tmpl",
			wantTemplateName: pageTemplateName,
			templateData:     struct{ Panel, Query, Message string }{Panel: "error", Message: "Word not found 😕"},
			wantContains:     []string{`<p class="error">Word not found 😕</p>`},
		},
		{
			name:             "uses embedded template when path is empty",
			templatePath:     "",
			wantTemplateName: pageTemplateName,
			templateData:     struct{ Panel, Query string }{Panel: "loading", Query: "hello"},
			wantContains:     []string{`<p class="loading">Loading...</p>`, `value="hello"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParsePageTemplate(tt.templatePath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTemplateName, tmpl.Name())

			var buf bytes.Buffer
			require.NoError(t, tmpl.Execute(&buf, tt.templateData))
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWriteEntry(t *testing.T) {
	tests := []struct {
		name         string
		templatePath string
		templateData EntryTemplate
		want         string
	}{
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "custom.md.go.tmpl")
				require.NoError(t, os.WriteFile(templatePath, []byte(`{{ .Word }}: {{ range .Meanings }}{{ join .Definitions "; " }}{{ end }}`), 0644))
				return templatePath
			}(t),
			templateData: EntryTemplate{
				Word:     "hello",
				Meanings: []EntryMeaning{{PartOfSpeech: "noun", Definitions: []string{"a greeting", "a call"}}},
			},
			want: "hello: a greeting; a call",
		},
		{
			name:         "embedded template",
			templatePath: "",
			templateData: EntryTemplate{
				Word:          "hello",
				Pronunciation: "/həˈləʊ/",
				AudioURL:      "https://example.com/hello-uk.mp3",
				Meanings: []EntryMeaning{
					{PartOfSpeech: "noun", Definitions: []string{"A greeting."}, Synonyms: []string{"greeting", "hi"}},
				},
				SourceURLs: []string{"https://en.wiktionary.org/wiki/hello"},
			},
			want: `# hello

Pronunciation: /həˈləʊ/

Audio: [https://example.com/hello-uk.mp3](https://example.com/hello-uk.mp3)

## noun

- A greeting.

Synonyms: greeting, hi

---

Source: https://en.wiktionary.org/wiki/hello

`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteEntry(&buf, tt.templatePath, tt.templateData))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
