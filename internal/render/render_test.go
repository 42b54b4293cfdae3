// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

func sampleArticle() *types.Article {
	return &types.Article{
		Title:           "Docker Networking Explained",
		Content:         "Containers talk over bridges.\n\n## Bridge networks\n\nDefault driver.",
		Date:            "2026-03-10",
		Tags:            []string{"Docker", "Technical"},
		Type:            "blog_post",
		Length:          types.LengthShort,
		TargetWordCount: 800,
		CodeExamples:    []types.CodeExample{},
	}
}

func TestProcessSupportedFormats(t *testing.T) {
	p := NewProcessor()
	for _, f := range types.OutputFormats {
		t.Run(string(f), func(t *testing.T) {
			out, err := p.Process(sampleArticle(), f)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
	}
}

func TestProcessUnsupportedFormat(t *testing.T) {
	p := NewProcessor()
	for _, f := range []types.OutputFormat{"pdf", "", "Markdown", "yaml"} {
		t.Run(string(f), func(t *testing.T) {
			_, err := p.Process(sampleArticle(), f)
			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrUnsupportedFormat))

			var ufe *types.UnsupportedFormatError
			require.ErrorAs(t, err, &ufe)
			assert.Equal(t, string(f), ufe.Format)
		})
	}
}

func TestMarkdownLayout(t *testing.T) {
	got := Markdown(sampleArticle())
	want := "# Docker Networking Explained\n\n" +
		"*Generated on 2026-03-10*\n\n" +
		"Containers talk over bridges.\n\n## Bridge networks\n\nDefault driver.\n\n" +
		"**Tags:** Docker, Technical"
	assert.Equal(t, want, got)
}

func TestMarkdownSingleDateLine(t *testing.T) {
	got := Markdown(sampleArticle())
	assert.True(t, strings.HasPrefix(got, "# Docker Networking Explained\n"))
	assert.Equal(t, 1, strings.Count(got, "*Generated on "))
}

func TestMarkdownOptionalSections(t *testing.T) {
	tests := []struct {
		name         string
		tags         []string
		examples     []types.CodeExample
		wantTags     bool
		wantExamples bool
	}{
		{"neither", nil, nil, false, false},
		{"tags only", []string{"Go"}, nil, true, false},
		{"examples only", nil, []types.CodeExample{{Language: "go", Code: "fmt.Println()"}}, false, true},
		{"both", []string{"Go"}, []types.CodeExample{{Language: "go", Code: "x := 1"}}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := sampleArticle()
			a.Tags = tt.tags
			a.CodeExamples = tt.examples
			got := Markdown(a)

			assert.Equal(t, tt.wantTags, strings.Contains(got, "**Tags:**"))
			assert.Equal(t, tt.wantExamples, strings.Contains(got, "## Code Examples"))
		})
	}
}

func TestMarkdownCodeExamples(t *testing.T) {
	a := sampleArticle()
	a.Tags = nil
	a.CodeExamples = []types.CodeExample{
		{Language: "bash", Code: "docker network ls"},
		{Language: "", Code: "plain"},
	}
	got := Markdown(a)
	assert.True(t, strings.HasSuffix(got, "## Code Examples\n\n```bash\ndocker network ls\n```\n\n```\nplain\n```\n\n"))
}

func TestMarkdownEmptyBody(t *testing.T) {
	a := sampleArticle()
	a.Content = ""
	want := "# Docker Networking Explained\n\n" +
		"*Generated on 2026-03-10*\n\n" +
		"**Tags:** Docker, Technical"
	assert.Equal(t, want, Markdown(a))
}

func TestMarkdownUntitled(t *testing.T) {
	a := sampleArticle()
	a.Title = ""
	assert.True(t, strings.HasPrefix(Markdown(a), "# Untitled\n\n"))
}

func TestHTML(t *testing.T) {
	out, err := NewProcessor().Process(sampleArticle(), types.FormatHTML)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, "Docker Networking Explained", doc.Find("h1").First().Text())
	assert.Equal(t, "Bridge networks", doc.Find("h2").First().Text())
	assert.Equal(t, "Generated on 2026-03-10", doc.Find("em").First().Text())
	assert.Equal(t, "Tags:", doc.Find("strong").Last().Text())
}

func TestHTMLOmitsRawHTML(t *testing.T) {
	a := sampleArticle()
	a.Content = "<script>alert(1)</script>\n\nSafe paragraph."
	out, err := NewProcessor().HTML(a)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "Safe paragraph.")
}

func TestJSONContainsRequiredKeys(t *testing.T) {
	out, err := NewProcessor().Process(sampleArticle(), types.FormatJSON)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	for _, key := range []string{"title", "content", "date", "tags"} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, "Docker Networking Explained", decoded["title"])
	assert.Equal(t, []any{"Docker", "Technical"}, decoded["tags"])
	assert.EqualValues(t, 800, decoded["target_word_count"])
	assert.True(t, strings.HasPrefix(out, "{\n  \"title\""), "two-space indentation")
}

func TestJSONDoesNotEscapeHTML(t *testing.T) {
	a := sampleArticle()
	a.Content = "if a < b && c > d {}"
	out, err := JSON(a)
	require.NoError(t, err)
	assert.Contains(t, out, "a < b && c > d")
}

func TestProcessTrendReport(t *testing.T) {
	r := &types.TrendReport{
		Technology:     "Kubernetes",
		Date:           "2026-03-10",
		Status:         types.TrendsNotImplemented,
		Trends:         []types.TrendItem{},
		GitHubActivity: []types.TrendItem{},
		BlogPosts:      []types.TrendItem{},
		Research:       []types.TrendItem{},
	}
	p := NewProcessor()

	md, err := p.Process(r, types.FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "# Untitled\n\n*Generated on 2026-03-10*\n\n", md)

	js, err := p.Process(r, types.FormatJSON)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(js), &decoded))
	assert.Equal(t, "Kubernetes", decoded["technology"])
	assert.Equal(t, []any{}, decoded["trends"])
}

func TestAddMetadata(t *testing.T) {
	a := AddMetadata(sampleArticle())
	require.NotNil(t, a.Metadata)
	assert.Equal(t, types.Metadata{
		GeneratedAt: "2026-03-10",
		Generator:   "Technical Blog Generator",
		Version:     "1.0",
		Type:        "blog_post",
	}, *a.Metadata)
}

func TestAddMetadataDefaultsType(t *testing.T) {
	a := sampleArticle()
	a.Type = ""
	AddMetadata(a)
	assert.Equal(t, "blog_post", a.Metadata.Type)

	r := AddMetadata(&types.TrendReport{Technology: "Go", Date: "2026-01-01"})
	assert.Equal(t, "blog_post", r.Metadata.Type)
	assert.Equal(t, "2026-01-01", r.Metadata.GeneratedAt)
}

func TestAddMetadataLastWriteWins(t *testing.T) {
	a := sampleArticle()
	AddMetadata(a)
	a.Type = "tutorial"
	a.Date = "2026-04-01"
	AddMetadata(a)

	assert.Equal(t, "tutorial", a.Metadata.Type)
	assert.Equal(t, "2026-04-01", a.Metadata.GeneratedAt)

	out, err := JSON(a)
	require.NoError(t, err)
	var decoded struct {
		Metadata map[string]any `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded.Metadata, 4)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  any
		want bool
	}{
		{"title only", map[string]any{"title": "x"}, false},
		{"title and content", map[string]any{"title": "x", "content": "y"}, true},
		{"empty values still present", map[string]any{"title": "", "content": nil}, true},
		{"extra fields ignored", map[string]any{"title": "x", "content": "y", "tags": 3}, true},
		{"content only", map[string]any{"content": "y"}, false},
		{"article", sampleArticle(), true},
		{"trend report", &types.TrendReport{Technology: "Go"}, false},
		{"not an object", []string{"title", "content"}, false},
		{"unmarshalable", map[string]any{"title": make(chan int)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.doc))
		})
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(types.FormatHTML))
	assert.False(t, Supported("docx"))
}
