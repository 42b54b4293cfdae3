// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

// ExtractCodeExamples returns every fenced code block in markdown, in
// document order, with its info-string language and the given source.
func ExtractCodeExamples(markdown, source string) []types.CodeExample {
	src := []byte(markdown)
	root := goldmark.DefaultParser().Parse(text.NewReader(src))

	examples := []types.CodeExample{}
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var code bytes.Buffer
		lines := block.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			code.Write(seg.Value(src))
		}
		examples = append(examples, types.CodeExample{
			Language: string(block.Language(src)),
			Code:     strings.TrimRight(code.String(), "\n"),
			Source:   source,
		})
		return ast.WalkSkipChildren, nil
	})
	return examples
}
