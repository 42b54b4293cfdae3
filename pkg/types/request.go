// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"slices"
	"strings"
)

// Style selects the voice and focus of a generated article.
type Style string

const (
	StyleTechnical Style = "Technical"
	StyleTutorial  Style = "Tutorial"
	StyleOverview  Style = "Overview"
	StyleDeepDive  Style = "Deep Dive"
)

// Styles lists every supported style in display order.
var Styles = []Style{StyleTechnical, StyleTutorial, StyleOverview, StyleDeepDive}

// ParseStyle accepts the display name ("Deep Dive") as well as lower,
// snake and kebab forms ("deep_dive", "deep-dive").
func ParseStyle(s string) (Style, error) {
	key := normalizeKey(s)
	for _, st := range Styles {
		if normalizeKey(string(st)) == key {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown style %q: use one of %s", s, joinNames(Styles))
}

// Length is the length class of an article. It drives both the target word
// count and the model configuration.
type Length string

const (
	LengthShort    Length = "short"
	LengthMedium   Length = "medium"
	LengthLong     Length = "long"
	LengthVeryLong Length = "very_long"
)

// Lengths lists every length class from shortest to longest.
var Lengths = []Length{LengthShort, LengthMedium, LengthLong, LengthVeryLong}

// ParseLength parses a length class. An empty string yields medium.
func ParseLength(s string) (Length, error) {
	if strings.TrimSpace(s) == "" {
		return LengthMedium, nil
	}
	key := normalizeKey(s)
	for _, l := range Lengths {
		if normalizeKey(string(l)) == key {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown length %q: use one of %s", s, joinNames(Lengths))
}

// TargetWords returns the approximate word count requested from the model.
// The value is informational; nothing checks the output against it.
func (l Length) TargetWords() int {
	switch l {
	case LengthShort:
		return 800
	case LengthMedium:
		return 1500
	case LengthLong:
		return 2500
	case LengthVeryLong:
		return 4000
	}
	return 0
}

// Difficulty is the reader level of a tutorial.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Difficulties lists every difficulty level.
var Difficulties = []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// ParseDifficulty parses a difficulty level. An empty string yields Intermediate.
func ParseDifficulty(s string) (Difficulty, error) {
	if strings.TrimSpace(s) == "" {
		return DifficultyIntermediate, nil
	}
	key := normalizeKey(s)
	for _, d := range Difficulties {
		if normalizeKey(string(d)) == key {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q: use one of %s", s, joinNames(Difficulties))
}

// ContentType selects what the pipeline produces.
type ContentType string

const (
	ContentBlogPost       ContentType = "Blog Post"
	ContentTutorial       ContentType = "Tutorial"
	ContentTechnicalGuide ContentType = "Technical Guide"
	ContentTrendReport    ContentType = "Trend Report"
)

// ContentTypes lists every content type.
var ContentTypes = []ContentType{ContentBlogPost, ContentTutorial, ContentTechnicalGuide, ContentTrendReport}

// ParseContentType parses a content type. An empty string yields Blog Post.
func ParseContentType(s string) (ContentType, error) {
	if strings.TrimSpace(s) == "" {
		return ContentBlogPost, nil
	}
	key := normalizeKey(s)
	for _, c := range ContentTypes {
		if normalizeKey(string(c)) == key {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown content type %q: use one of %s", s, joinNames(ContentTypes))
}

// DocumentType returns the snake_case type recorded in article metadata.
func (c ContentType) DocumentType() string {
	switch c {
	case ContentTutorial:
		return "tutorial"
	case ContentTechnicalGuide:
		return "technical_guide"
	case ContentTrendReport:
		return "trend_report"
	}
	return "blog_post"
}

// OutputFormat selects the serialization of a processed document.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
	FormatJSON     OutputFormat = "json"
)

// OutputFormats lists every supported output format.
var OutputFormats = []OutputFormat{FormatMarkdown, FormatHTML, FormatJSON}

// ParseOutputFormat parses an output format case-insensitively. An empty
// string yields markdown.
func ParseOutputFormat(s string) (OutputFormat, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return FormatMarkdown, nil
	}
	for _, f := range OutputFormats {
		if string(f) == key {
			return f, nil
		}
	}
	return "", &UnsupportedFormatError{Format: s}
}

// GenerationRequest describes one user action. It is not modified after
// construction.
type GenerationRequest struct {
	Topic       string
	Style       Style
	Length      Length
	Difficulty  Difficulty
	ContentType ContentType

	// IncludeCode extracts fenced code blocks from the generated body into
	// Article.CodeExamples.
	IncludeCode bool
}

// Validate reports the first problem with the request, or nil.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return fmt.Errorf("topic is required")
	}
	if !slices.Contains(Styles, r.Style) {
		return fmt.Errorf("unknown style %q: use one of %s", r.Style, joinNames(Styles))
	}
	if !slices.Contains(Lengths, r.Length) {
		return fmt.Errorf("unknown length %q: use one of %s", r.Length, joinNames(Lengths))
	}
	return nil
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func joinNames[T ~string](vals []T) string {
	names := make([]string, len(vals))
	for i, v := range vals {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}
