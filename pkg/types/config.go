package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "techblog/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the web search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates against the search provider.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL overrides the provider endpoint (default https://api.exa.ai).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// NumResults is the provider page size (default 10).
	NumResults int `json:"num_results" yaml:"num_results"`

	// RecencyDays is the publication window for results (default 30).
	RecencyDays int `json:"recency_days" yaml:"recency_days"`

	// MaxRetries bounds HTTP 429 backoff attempts (0 = default).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// AIConfig holds shared settings for stages that call a completion API.
type AIConfig struct {
	// APIKey is the authentication key for the completion API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// BaseURL points at an OpenAI-compatible endpoint; empty uses the default.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// GenerationConfig holds settings for the generation stage.
type GenerationConfig struct {
	// QueryModel is the model used to build search queries (default gpt-3.5-turbo).
	QueryModel string `json:"query_model" yaml:"query_model"`

	// SectionConcurrency bounds parallel section calls for very_long
	// articles (default 5; 1 generates sections one after another).
	SectionConcurrency int `json:"section_concurrency" yaml:"section_concurrency"`
}

// OutputConfig holds settings for writing formatted documents.
type OutputConfig struct {
	// Dir is the directory generated files are written to (default "output").
	Dir string `json:"dir" yaml:"dir"`

	// Format is the default output format.
	Format OutputFormat `json:"format" yaml:"format"`
}

// ArchiveConfig holds settings for the article archive.
type ArchiveConfig struct {
	// Dir contains the archive database (default "archive").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default list/search limit (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Search     SearchConfig     `json:"search" yaml:"search"`
	OpenAI     AIConfig         `json:"openai" yaml:"openai"`
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Output     OutputConfig     `json:"output" yaml:"output"`
	Archive    ArchiveConfig    `json:"archive" yaml:"archive"`
}
