// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search retrieves recent web content for a topic and turns the top
// results into prompt context.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

// DefaultRecencyDays is the publication window used when none is given.
const DefaultRecencyDays = 30

// Backend searches one web search provider.
type Backend interface {
	Name() string
	Search(ctx context.Context, query Query) ([]types.SearchResult, error)
}

// Query holds the search parameters sent to a backend.
type Query struct {
	Text string

	// StartPublishedDate excludes documents published before it. Zero means no bound.
	StartPublishedDate time.Time

	// NumResults is the page size; zero uses the backend default.
	NumResults int
}

// IsEmpty reports whether the query has no search text.
func (q Query) IsEmpty() bool {
	return strings.TrimSpace(q.Text) == ""
}

// now is replaced in tests.
var now = time.Now

// RecentContent searches for text restricted to documents published within
// the last days (DefaultRecencyDays when days <= 0). The cutoff is passed to
// the provider; results are not filtered again here. Results keep provider
// order, most relevant first.
func RecentContent(ctx context.Context, b Backend, text string, days int) ([]types.SearchResult, error) {
	if days <= 0 {
		days = DefaultRecencyDays
	}
	q := Query{
		Text:               text,
		StartPublishedDate: Cutoff(now(), days),
	}
	if q.IsEmpty() {
		return nil, fmt.Errorf("search query is empty")
	}

	results, err := b.Search(ctx, q)
	if err != nil {
		return nil, &types.ProviderError{Provider: b.Name(), Op: "search", Err: err}
	}
	return results, nil
}

// Cutoff returns the calendar day days before t, at midnight in t's location.
func Cutoff(t time.Time, days int) time.Time {
	d := t.AddDate(0, 0, -days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// BuildContext joins the first n results as "Title: ...\nContent: ...",
// keeping at most maxChars runes of each result's text, separated by a
// blank line.
func BuildContext(results []types.SearchResult, n, maxChars int) string {
	if n > len(results) {
		n = len(results)
	}
	blocks := make([]string, 0, n)
	for _, r := range results[:n] {
		blocks = append(blocks, fmt.Sprintf("Title: %s\nContent: %s...", r.Title, Truncate(r.Text, maxChars)))
	}
	return strings.Join(blocks, "\n\n")
}

// Truncate returns the first max runes of s.
func Truncate(s string, max int) string {
	if max < 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// FormatTable writes results as a human-readable table to w.
func FormatTable(results []types.SearchResult, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-10s  %s\n", "Rank", "Title", "Published", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, r := range results {
		title := r.Title
		if len([]rune(title)) > 60 {
			title = Truncate(title, 57) + "..."
		}
		published := r.PublishedDate
		if len(published) > 10 {
			published = published[:10]
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-10s  %s\n", i+1, title, published, r.URL)
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(results []types.SearchResult, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
