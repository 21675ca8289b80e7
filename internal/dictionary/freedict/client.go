package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/at-ishikawa/wordlens/internal/dictionary"
	"github.com/go-resty/resty/v2"
)

const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

type Client struct {
	httpClient *resty.Client
}

var _ dictionary.Reader = (*Client)(nil)

// NewClient creates a client for baseURL. A zero timeout leaves the
// transport default in place.
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &Client{
		httpClient: client,
	}
}

// Lookup issues exactly one GET for word and returns the first entry.
// It never retries.
func (c *Client) Lookup(ctx context.Context, word string) (dictionary.Entry, error) {
	logger := slog.Default().With(slog.String("word", word))
	logger.DebugContext(ctx, "free dictionary request")

	res, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("word", word).
		Get("/{word}")
	if err != nil {
		logger.ErrorContext(ctx, "free dictionary request failed", slog.Any("error", err))
		return dictionary.Entry{}, dictionary.NewTransportError(word, 0, fmt.Errorf("client.R.Get > %w", err))
	}

	logger.DebugContext(ctx, "free dictionary response", slog.Int("status", res.StatusCode()))
	if res.StatusCode() == http.StatusNotFound {
		return dictionary.Entry{}, dictionary.NewNotFoundError(word, res.StatusCode())
	}
	if !res.IsSuccess() {
		return dictionary.Entry{}, dictionary.NewTransportError(
			word,
			res.StatusCode(),
			fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body())),
		)
	}

	var responses []Response
	if err := json.Unmarshal(res.Body(), &responses); err != nil {
		return dictionary.Entry{}, dictionary.NewTransportError(word, res.StatusCode(), fmt.Errorf("json.Unmarshal > %w", err))
	}
	if len(responses) == 0 {
		return dictionary.Entry{}, dictionary.NewNotFoundError(word, res.StatusCode())
	}
	return responses[0].ToEntry(), nil
}
