package assets

import (
	_ "embed"
	"fmt"
	htmltemplate "html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const (
	pageTemplateName  = "page.html.go.tmpl"
	entryTemplateName = "entry.md.go.tmpl"
)

//go:embed templates/page.html.go.tmpl
var fallbackPageTemplate string

//go:embed templates/entry.md.go.tmpl
var fallbackEntryTemplate string

var funcMap = map[string]any{
	"join": strings.Join,
}

// ParsePageTemplate parses the HTML lookup page at templatePath, falling back
// to the embedded page when the path is empty, missing or invalid.
func ParsePageTemplate(templatePath string) (*htmltemplate.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := htmltemplate.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			warnTemplate(templatePath, err)
		}
	}

	tmpl, err := htmltemplate.New(pageTemplateName).
		Funcs(funcMap).
		Parse(fallbackPageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

// ParseEntryTemplate does the same as ParsePageTemplate for the markdown
// export of an entry.
func ParseEntryTemplate(templatePath string) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			warnTemplate(templatePath, err)
		}
	}

	tmpl, err := template.New(entryTemplateName).
		Funcs(funcMap).
		Parse(fallbackEntryTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

func warnTemplate(templatePath string, err error) {
	slog.Default().Warn("failed to parse a templatePath",
		slog.String("templatePath", templatePath),
		slog.Any("error", err),
	)
}
