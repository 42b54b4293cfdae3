// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name   string
		out    string
		format types.OutputFormat
		want   int
	}{
		{"markdown", "# Title\n\nsome body text", types.FormatMarkdown, 5},
		{"html ignores markup", "<h1>Title</h1>\n<p>some <em>body</em> text</p>", types.FormatHTML, 4},
		{"json counts tokens", "{\n  \"title\": \"a b\"\n}", types.FormatJSON, 5},
		{"empty", "", types.FormatMarkdown, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordCount(tt.out, tt.format))
		})
	}
}
