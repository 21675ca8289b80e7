// Package audio saves the pronunciation sample of an entry to disk.
package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/at-ishikawa/wordlens/internal/dictionary"
	"resty.dev/v3"
)

var ErrNoAudio = errors.New("entry has no audio")

type Downloader struct {
	httpClient      *resty.Client
	outputDirectory string
}

func NewDownloader(outputDirectory string) *Downloader {
	return &Downloader{
		httpClient:      resty.New(),
		outputDirectory: outputDirectory,
	}
}

func (d *Downloader) Close() error {
	return d.httpClient.Close()
}

// Download fetches the audio of the entry's first phonetic, the same one
// the lookup page plays, and returns the written file path.
func (d *Downloader) Download(ctx context.Context, entry dictionary.Entry) (string, error) {
	phonetic, ok := entry.FirstPhonetic()
	if !ok {
		return "", fmt.Errorf("%s: %w", entry.Word, ErrNoAudio)
	}
	audioURL, ok := phonetic.AudioValue()
	if !ok {
		return "", fmt.Errorf("%s: %w", entry.Word, ErrNoAudio)
	}

	name, err := fileName(audioURL)
	if err != nil {
		return "", fmt.Errorf("fileName(%s) > %w", audioURL, err)
	}

	response, err := d.httpClient.R().
		SetContext(ctx).
		Get(audioURL)
	if err != nil {
		return "", fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), audioURL)
	}

	if err := os.MkdirAll(d.outputDirectory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", d.outputDirectory, err)
	}
	outputPath := filepath.Join(d.outputDirectory, name)
	if err := os.WriteFile(outputPath, response.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", outputPath, err)
	}

	slog.Default().Debug("audio saved",
		slog.String("word", entry.Word),
		slog.String("url", audioURL),
		slog.String("path", outputPath),
	)
	return outputPath, nil
}

func fileName(audioURL string) (string, error) {
	parsed, err := url.Parse(audioURL)
	if err != nil {
		return "", fmt.Errorf("url.Parse > %w", err)
	}
	name := path.Base(parsed.Path)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("no file name in %q", audioURL)
	}
	return name, nil
}
