// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/techblog-engine/internal/httputil"
	"github.com/pdiddy/techblog-engine/pkg/types"
)

// exaAPIBase is the Exa API root. Declared as a var so tests can substitute
// an httptest server.
var exaAPIBase = "https://api.exa.ai"

const defaultNumResults = 10

// ExaBackend queries the Exa neural search API with page contents included.
type ExaBackend struct {
	Client *http.Client
	Config types.SearchConfig
}

// NewExaBackend returns a backend for cfg. A nil client gets one with
// cfg.Timeout.
func NewExaBackend(client *http.Client, cfg types.SearchConfig) (*ExaBackend, error) {
	if cfg.APIKey == "" {
		return nil, &types.MissingCredentialError{Keys: []string{"exa-api-key"}}
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &ExaBackend{Client: client, Config: cfg}, nil
}

// Name returns the backend identifier.
func (b *ExaBackend) Name() string { return "exa" }

// Search posts the query to /search with autoprompt enabled and the
// publication cutoff as startPublishedDate.
func (b *ExaBackend) Search(ctx context.Context, query Query) ([]types.SearchResult, error) {
	if query.IsEmpty() {
		return nil, fmt.Errorf("empty Exa query")
	}

	numResults := query.NumResults
	if numResults <= 0 {
		numResults = b.Config.NumResults
	}
	if numResults <= 0 {
		numResults = defaultNumResults
	}

	body := exaRequest{
		Query:         query.Text,
		UseAutoprompt: true,
		NumResults:    numResults,
		Contents:      exaContents{Text: true},
	}
	if !query.StartPublishedDate.IsZero() {
		body.StartPublishedDate = query.StartPublishedDate.Format(types.DateLayout)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling Exa request: %w", err)
	}

	base := b.Config.BaseURL
	if base == "" {
		base = exaAPIBase
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(base, "/")+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", b.Config.APIKey)
	if b.Config.UserAgent != "" {
		req.Header.Set("User-Agent", b.Config.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, b.Config.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("Exa API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Exa API: %w", httputil.StatusError(resp))
	}

	var er exaResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return nil, fmt.Errorf("parsing Exa response: %w", err)
	}

	results := make([]types.SearchResult, 0, len(er.Results))
	for _, r := range er.Results {
		results = append(results, types.SearchResult{
			Title:         r.Title,
			URL:           r.URL,
			Text:          r.Text,
			PublishedDate: r.PublishedDate,
			Author:        r.Author,
			Score:         r.Score,
		})
	}
	return results, nil
}

// Exa API JSON structures.
type exaRequest struct {
	Query              string      `json:"query"`
	UseAutoprompt      bool        `json:"useAutoprompt"`
	NumResults         int         `json:"numResults"`
	StartPublishedDate string      `json:"startPublishedDate,omitempty"`
	Contents           exaContents `json:"contents"`
}

type exaContents struct {
	Text bool `json:"text"`
}

type exaResponse struct {
	AutopromptString string      `json:"autopromptString"`
	Results          []exaResult `json:"results"`
}

type exaResult struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	PublishedDate string  `json:"publishedDate"`
	Author        string  `json:"author"`
	Score         float64 `json:"score"`
	Text          string  `json:"text"`
}
