// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"text/template"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

const (
	querySystemPrompt   = "Generate a concise search query based on the topic and style. Only return the query text."
	writerSystemPrompt  = "You are an expert technical writer who creates high-quality blog content."
	titleSystemPrompt   = "You write concise, engaging titles for technical articles. Only return the title text."
	queryPromptTemplate = "Generate a search query to find recent information about {{.Topic}} {{.Focus}}"
)

// Sections is the fixed, ordered list of sections generated for very_long
// articles.
var Sections = []string{
	"Introduction and Background",
	"Main Concepts and Technical Details",
	"Analysis and Implementation",
	"Advanced Topics and Future Implications",
	"Conclusion and Key Takeaways",
}

// queryFocus returns the clause that steers the search query toward a style.
func queryFocus(s types.Style) string {
	switch s {
	case types.StyleTechnical:
		return "focusing on technical details and implementation"
	case types.StyleTutorial:
		return "focusing on tutorials and how-to guides"
	case types.StyleOverview:
		return "focusing on high-level concepts and introductions"
	case types.StyleDeepDive:
		return "focusing on in-depth analysis and advanced concepts"
	}
	return ""
}

// styleInstruction returns the writing instruction for a style.
func styleInstruction(s types.Style) string {
	switch s {
	case types.StyleTechnical:
		return "Create a technical blog post with detailed explanations and focus on implementation details."
	case types.StyleTutorial:
		return "Create a step-by-step tutorial that guides readers through learning and implementation."
	case types.StyleOverview:
		return "Create a high-level overview that introduces key concepts and their importance."
	case types.StyleDeepDive:
		return "Create an in-depth analysis that explores advanced concepts and their implications."
	}
	return ""
}

var queryTmpl = template.Must(template.New("query").Parse(queryPromptTemplate))

var articleTmpl = template.Must(template.New("article").Parse(`Based on the following recent information about {{.Topic}}, {{.Instruction}}

The article should be approximately {{.Words}} words long.

Context:
{{.Context}}

Generate a comprehensive blog post that includes:
1. An engaging title on the first line
2. A well-structured main content
3. Key takeaways or conclusions
4. If relevant, code examples or technical specifications
`))

var sectionTmpl = template.Must(template.New("section").Parse(`You are writing one section of a longer article about {{.Topic}}. {{.Instruction}}

Write only the section "{{.Section}}" (part {{.Index}} of {{.Total}}), approximately {{.Words}} words long.
Begin with the heading "## {{.Section}}". Do not write an article title and do not cover the other sections.

Context:
{{.Context}}
`))

var titleTmpl = template.Must(template.New("title").Parse(`Write an engaging title for a {{.Style}} article about {{.Topic}}, approximately {{.Words}} words long, covering: {{.Outline}}.`))

type queryData struct {
	Topic string
	Focus string
}

type articleData struct {
	Topic       string
	Instruction string
	Words       int
	Context     string
}

type sectionData struct {
	Topic       string
	Instruction string
	Section     string
	Index       int
	Total       int
	Words       int
	Context     string
}

type titleData struct {
	Topic   string
	Style   types.Style
	Words   int
	Outline string
}

func renderPrompt(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
