// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the techblog pipeline:
// generation requests, search results, model settings, generated articles,
// trend reports, and the per-stage configuration.
package types

// DateLayout is the date format used for article and report dates.
const DateLayout = "2006-01-02"

// CodeExample is a fenced code block attached to an article.
type CodeExample struct {
	Language string `json:"language" yaml:"language"`
	Code     string `json:"code" yaml:"code"`

	// Source is the URL the block was taken from, or "generated".
	Source string `json:"source" yaml:"source"`
}

// Metadata is the fixed block attached to a document before formatting.
type Metadata struct {
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Generator   string `json:"generator" yaml:"generator"`
	Version     string `json:"version" yaml:"version"`
	Type        string `json:"type" yaml:"type"`
}

// Article is a generated article. It is built once per request, receives
// metadata exactly once, and is then handed to formatting.
type Article struct {
	Title   string   `json:"title" yaml:"title"`
	Content string   `json:"content" yaml:"content"`
	Date    string   `json:"date" yaml:"date"`
	Tags    []string `json:"tags" yaml:"tags"`

	// Type is the document type recorded in metadata (e.g. "blog_post").
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	Length Length `json:"length" yaml:"length"`

	// TargetWordCount is what the model was asked for. It is never checked
	// against the generated text.
	TargetWordCount int `json:"target_word_count" yaml:"target_word_count"`

	CodeExamples []CodeExample `json:"code_examples" yaml:"code_examples"`
	Metadata     *Metadata     `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Heading returns the article title.
func (a *Article) Heading() string { return a.Title }

// GeneratedOn returns the article date.
func (a *Article) GeneratedOn() string { return a.Date }

// Body returns the article body.
func (a *Article) Body() string { return a.Content }

// Labels returns the article tags.
func (a *Article) Labels() []string { return a.Tags }

// Examples returns the code examples attached to the article.
func (a *Article) Examples() []CodeExample { return a.CodeExamples }

// DocumentType returns the article type, which may be empty.
func (a *Article) DocumentType() string { return a.Type }

// SetMetadata replaces the article metadata.
func (a *Article) SetMetadata(m Metadata) { a.Metadata = &m }

// TrendStatus says whether a trend report carries real data.
type TrendStatus string

const (
	TrendsNotImplemented TrendStatus = "not_implemented"
	TrendsCollected      TrendStatus = "collected"
)

// TrendItem is one signal about a technology (a repository, post, or paper).
type TrendItem struct {
	Title   string `json:"title" yaml:"title"`
	URL     string `json:"url" yaml:"url"`
	Summary string `json:"summary" yaml:"summary"`
}

// TrendReport aggregates trend signals for a technology.
type TrendReport struct {
	Technology     string      `json:"technology" yaml:"technology"`
	Date           string      `json:"date" yaml:"date"`
	Status         TrendStatus `json:"status" yaml:"status"`
	Trends         []TrendItem `json:"trends" yaml:"trends"`
	GitHubActivity []TrendItem `json:"github_activity" yaml:"github_activity"`
	BlogPosts      []TrendItem `json:"blog_posts" yaml:"blog_posts"`
	Research       []TrendItem `json:"research" yaml:"research"`
	Metadata       *Metadata   `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Heading is empty: reports carry no title.
func (r *TrendReport) Heading() string { return "" }

// GeneratedOn returns the report date.
func (r *TrendReport) GeneratedOn() string { return r.Date }

// Body is empty: reports carry no prose.
func (r *TrendReport) Body() string { return "" }

// Labels is nil: reports carry no tags.
func (r *TrendReport) Labels() []string { return nil }

// Examples is nil: reports carry no code.
func (r *TrendReport) Examples() []CodeExample { return nil }

// DocumentType is empty so metadata falls back to the default type.
func (r *TrendReport) DocumentType() string { return "" }

// SetMetadata replaces the report metadata.
func (r *TrendReport) SetMetadata(m Metadata) { r.Metadata = &m }
