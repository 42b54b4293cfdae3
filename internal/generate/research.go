// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/techblog-engine/internal/search"
	"github.com/pdiddy/techblog-engine/pkg/types"
)

const trendSummaryChars = 200

// TrackTechTrends searches recent developments for technology and returns
// one item per result with the first 200 characters of its text as summary.
func (g *Generator) TrackTechTrends(ctx context.Context, technology string) ([]types.TrendItem, error) {
	results, err := search.RecentContent(ctx, g.search, "latest developments in "+technology, g.recencyDays)
	if err != nil {
		return nil, fmt.Errorf("tracking %s: %w", technology, err)
	}

	items := make([]types.TrendItem, 0, len(results))
	for _, r := range results {
		items = append(items, types.TrendItem{
			Title:   r.Title,
			URL:     r.URL,
			Summary: search.Truncate(r.Text, trendSummaryChars),
		})
	}
	return items, nil
}

// GenerateCodeExamples searches for code about topic in language and
// collects every fenced block found in the result texts, tagged with the
// requested language and the result URL.
func (g *Generator) GenerateCodeExamples(ctx context.Context, topic, language string) ([]types.CodeExample, error) {
	query := fmt.Sprintf("%s code examples in %s", topic, language)
	results, err := search.RecentContent(ctx, g.search, query, g.recencyDays)
	if err != nil {
		return nil, fmt.Errorf("searching code examples: %w", err)
	}

	examples := []types.CodeExample{}
	for _, r := range results {
		for _, code := range FencedBlocks(r.Text) {
			examples = append(examples, types.CodeExample{
				Language: language,
				Code:     code,
				Source:   r.URL,
			})
		}
	}
	return examples, nil
}

// FencedBlocks returns the contents of ``` fenced blocks in plain text: the
// odd segments after splitting on the fence. An info string on the opening
// line (e.g. "python") is dropped. Blank blocks are skipped.
func FencedBlocks(text string) []string {
	if !strings.Contains(text, "```") {
		return nil
	}
	segments := strings.Split(text, "```")
	var blocks []string
	for i := 1; i < len(segments); i += 2 {
		code := stripInfoString(segments[i])
		if code = strings.TrimSpace(code); code != "" {
			blocks = append(blocks, code)
		}
	}
	return blocks
}

// stripInfoString drops a bare language tag that directly follows the
// opening fence.
func stripInfoString(seg string) string {
	first, rest, found := strings.Cut(seg, "\n")
	if !found {
		return seg
	}
	info := strings.TrimSpace(first)
	if info == "" || strings.ContainsAny(info, " \t(){};=") {
		return seg
	}
	return rest
}
