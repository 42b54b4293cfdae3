// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/techblog-engine/internal/llm"
	"github.com/pdiddy/techblog-engine/pkg/types"
)

func noCompletions(t *testing.T) *fakeCompleter {
	return &fakeCompleter{respond: func(llm.Request) (string, error) {
		t.Error("unexpected completion call")
		return "", errors.New("unexpected")
	}}
}

func TestTrackTechTrends(t *testing.T) {
	fb := &fakeBackend{results: []types.SearchResult{
		{Title: "Rust 2.0", URL: "https://a.example", Text: strings.Repeat("é", 250)},
		{Title: "Short", URL: "https://b.example", Text: "tiny"},
	}}
	g := newTestGenerator(t, noCompletions(t), fb, 0)

	items, err := g.TrackTechTrends(context.Background(), "Rust")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Rust 2.0", items[0].Title)
	assert.Equal(t, "https://a.example", items[0].URL)
	assert.Equal(t, strings.Repeat("é", 200), items[0].Summary)
	assert.Equal(t, "tiny", items[1].Summary)

	require.Len(t, fb.queries, 1)
	assert.Equal(t, "latest developments in Rust", fb.queries[0].Text)
}

func TestTrackTechTrendsEmpty(t *testing.T) {
	g := newTestGenerator(t, noCompletions(t), &fakeBackend{}, 0)
	items, err := g.TrackTechTrends(context.Background(), "COBOL")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestTrackTechTrendsError(t *testing.T) {
	g := newTestGenerator(t, noCompletions(t), &fakeBackend{err: errors.New("down")}, 0)
	_, err := g.TrackTechTrends(context.Background(), "Rust")
	var pe *types.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "search", pe.Op)
}

func TestGenerateCodeExamples(t *testing.T) {
	fb := &fakeBackend{results: []types.SearchResult{
		{URL: "https://one.example", Text: "Intro\n```python\nprint('a')\n```\nmid\n```\nx = 1\n```"},
		{URL: "https://two.example", Text: "no code"},
		{URL: "https://three.example", Text: "```py\nimport os\n```"},
	}}
	g := newTestGenerator(t, noCompletions(t), fb, 0)

	got, err := g.GenerateCodeExamples(context.Background(), "async IO", "python")
	require.NoError(t, err)
	assert.Equal(t, []types.CodeExample{
		{Language: "python", Code: "print('a')", Source: "https://one.example"},
		{Language: "python", Code: "x = 1", Source: "https://one.example"},
		{Language: "python", Code: "import os", Source: "https://three.example"},
	}, got)
	assert.Equal(t, "async IO code examples in python", fb.queries[0].Text)
}

func TestGenerateCodeExamplesNone(t *testing.T) {
	g := newTestGenerator(t, noCompletions(t), &fakeBackend{results: []types.SearchResult{{Text: "prose"}}}, 0)
	got, err := g.GenerateCodeExamples(context.Background(), "x", "go")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFencedBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"none", "plain text", nil},
		{"one", "a ```code``` b", []string{"code"}},
		{"info string dropped", "```go\nfmt.Println()\n```", []string{"fmt.Println()"}},
		{"code on first line kept", "```x := 1\ny := 2\n```", []string{"x := 1\ny := 2"}},
		{"unterminated fence", "```one``` mid ```two", []string{"one", "two"}},
		{"blank block skipped", "``` ``` text ```z```", []string{"z"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FencedBlocks(tt.in))
		})
	}
}
