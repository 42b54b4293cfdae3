// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render serializes generated documents to markdown, HTML, or JSON
// and attaches the fixed metadata block.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

const (
	// GeneratorName is recorded in every metadata block.
	GeneratorName = "Technical Blog Generator"

	// GeneratorVersion is recorded in every metadata block.
	GeneratorVersion = "1.0"

	defaultDocumentType = "blog_post"
	untitled            = "Untitled"
)

// Document is anything the processor can format. *types.Article and
// *types.TrendReport implement it.
type Document interface {
	Heading() string
	GeneratedOn() string
	Body() string
	Labels() []string
	Examples() []types.CodeExample
	DocumentType() string
	SetMetadata(types.Metadata)
}

// Processor formats documents. The zero value is not usable; call NewProcessor.
type Processor struct {
	md goldmark.Markdown
}

// NewProcessor returns a Processor using CommonMark rendering.
func NewProcessor() *Processor {
	return &Processor{md: goldmark.New()}
}

// Supported reports whether format is one of markdown, html, json.
func Supported(format types.OutputFormat) bool {
	return slices.Contains(types.OutputFormats, format)
}

// Process renders doc in format. Any format other than markdown, html, or
// json fails with a *types.UnsupportedFormatError.
func (p *Processor) Process(doc Document, format types.OutputFormat) (string, error) {
	switch format {
	case types.FormatMarkdown:
		return Markdown(doc), nil
	case types.FormatHTML:
		return p.HTML(doc)
	case types.FormatJSON:
		return JSON(doc)
	}
	return "", &types.UnsupportedFormatError{Format: string(format)}
}

// Markdown renders the heading, the generation date line, the body, an
// optional Code Examples section, and an optional tags line.
func Markdown(doc Document) string {
	var b strings.Builder

	title := doc.Heading()
	if title == "" {
		title = untitled
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "*Generated on %s*\n\n", doc.GeneratedOn())

	if body := doc.Body(); body != "" {
		b.WriteString(body)
		b.WriteString("\n\n")
	}

	if examples := doc.Examples(); len(examples) > 0 {
		b.WriteString("## Code Examples\n\n")
		for _, ex := range examples {
			fmt.Fprintf(&b, "```%s\n%s\n```\n\n", ex.Language, ex.Code)
		}
	}

	if tags := doc.Labels(); len(tags) > 0 {
		b.WriteString("**Tags:** ")
		b.WriteString(strings.Join(tags, ", "))
	}

	return b.String()
}

// HTML converts the markdown rendering with goldmark. Raw HTML in the body
// is omitted by goldmark's default renderer; nothing else is sanitized.
func (p *Processor) HTML(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(Markdown(doc)), &buf); err != nil {
		return "", fmt.Errorf("converting markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

// JSON serializes doc with two-space indentation. HTML characters are not
// escaped so code samples stay readable.
func JSON(doc Document) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// AddMetadata replaces doc's metadata with the fixed block and returns doc.
// Calling it again overwrites every field.
func AddMetadata[D Document](doc D) D {
	docType := doc.DocumentType()
	if docType == "" {
		docType = defaultDocumentType
	}
	doc.SetMetadata(types.Metadata{
		GeneratedAt: doc.GeneratedOn(),
		Generator:   GeneratorName,
		Version:     GeneratorVersion,
		Type:        docType,
	})
	return doc
}

// Validate reports whether doc, in its JSON form, has both a "title" and a
// "content" key. Values are not inspected. doc may be a struct or a map.
func Validate(doc any) bool {
	data, err := json.Marshal(doc)
	if err != nil {
		return false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return false
	}
	_, hasTitle := fields["title"]
	_, hasContent := fields["content"]
	return hasTitle && hasContent
}
