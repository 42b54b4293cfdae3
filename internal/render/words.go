// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

// WordCount counts whitespace-separated words in formatted output. For HTML
// only the text content is counted, not the markup.
func WordCount(out string, format types.OutputFormat) int {
	if format == types.FormatHTML {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
		if err == nil {
			return len(strings.Fields(doc.Text()))
		}
	}
	return len(strings.Fields(out))
}
