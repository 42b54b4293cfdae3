// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SearchResult is a web document returned by the search provider. Results
// are read-only and live for the duration of one generation request.
type SearchResult struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`

	// Text is the extracted page text as returned by the provider.
	Text string `json:"text" yaml:"text"`

	// PublishedDate is the provider's publication date string, when known.
	PublishedDate string `json:"published_date,omitempty" yaml:"published_date,omitempty"`

	Author string  `json:"author,omitempty" yaml:"author,omitempty"`
	Score  float64 `json:"score,omitempty" yaml:"score,omitempty"`
}
