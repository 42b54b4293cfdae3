// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate turns a topic, style, and length into a generated
// article: it builds a search query with one completion call, searches for
// recent content, and writes the article from that context.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/techblog-engine/internal/llm"
	"github.com/pdiddy/techblog-engine/internal/render"
	"github.com/pdiddy/techblog-engine/internal/search"
	"github.com/pdiddy/techblog-engine/pkg/types"
)

const (
	defaultQueryModel         = "gpt-3.5-turbo"
	queryMaxTokens            = 100
	titleMaxTokens            = 60
	defaultSectionConcurrency = 5

	// completionProvider names the completion service in ProviderErrors.
	completionProvider = "openai"
)

// ErrEmptyCompletion is returned when the model answers with blank text.
var ErrEmptyCompletion = errors.New("model returned empty text")

// Options configures a Generator.
type Options struct {
	Generation types.GenerationConfig

	// RecencyDays is the search window (default 30).
	RecencyDays int

	// Logger receives progress records; nil uses slog.Default().
	Logger *slog.Logger

	// Now stamps article dates; nil uses time.Now.
	Now func() time.Time
}

// Generator produces articles from web search context. It holds no
// per-request state and is safe for concurrent use if its collaborators are.
type Generator struct {
	llm         llm.Completer
	search      search.Backend
	queryModel  string
	concurrency int
	recencyDays int
	logger      *slog.Logger
	now         func() time.Time
}

// New returns a Generator that completes with completer and searches with backend.
func New(completer llm.Completer, backend search.Backend, opts Options) (*Generator, error) {
	if completer == nil {
		return nil, errors.New("completion client is required")
	}
	if backend == nil {
		return nil, errors.New("search backend is required")
	}

	g := &Generator{
		llm:         completer,
		search:      backend,
		queryModel:  opts.Generation.QueryModel,
		concurrency: opts.Generation.SectionConcurrency,
		recencyDays: opts.RecencyDays,
		logger:      opts.Logger,
		now:         opts.Now,
	}
	if g.queryModel == "" {
		g.queryModel = defaultQueryModel
	}
	if g.concurrency <= 0 {
		g.concurrency = defaultSectionConcurrency
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g, nil
}

// BuildQuery asks the model for a single search query for topic, focused
// according to style. There is no fallback query: a failed or blank
// completion is an error.
func (g *Generator) BuildQuery(ctx context.Context, topic string, style types.Style) (string, error) {
	prompt, err := renderPrompt(queryTmpl, queryData{Topic: topic, Focus: queryFocus(style)})
	if err != nil {
		return "", fmt.Errorf("rendering query prompt: %w", err)
	}

	out, err := g.complete(ctx, "query", llm.Request{
		Model:     g.queryModel,
		Messages:  []llm.Message{llm.System(querySystemPrompt), llm.User(prompt)},
		MaxTokens: queryMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(out), `"`), nil
}

// Generate runs the full pipeline for req: query, search, and article
// generation. Any failed call aborts the request; no partial article is
// returned.
func (g *Generator) Generate(ctx context.Context, req types.GenerationRequest) (*types.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	model, err := types.ModelFor(req.Length)
	if err != nil {
		return nil, err
	}

	log := g.logger.With("topic", req.Topic, "style", req.Style, "length", req.Length)

	query, err := g.BuildQuery(ctx, req.Topic, req.Style)
	if err != nil {
		return nil, fmt.Errorf("building search query: %w", err)
	}
	log.Info("built search query", "query", query)

	results, err := search.RecentContent(ctx, g.search, query, g.recencyDays)
	if err != nil {
		return nil, fmt.Errorf("searching recent content: %w", err)
	}
	n, maxChars := req.Length.ContextWindow()
	contextText := search.BuildContext(results, n, maxChars)
	log.Info("collected search context", "results", len(results), "used", min(n, len(results)))

	var title, body string
	if req.Length == types.LengthVeryLong {
		title, body, err = g.generateSections(ctx, req, model, contextText)
	} else {
		title, body, err = g.generateSingle(ctx, req, model, contextText)
	}
	if err != nil {
		return nil, err
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = types.ContentBlogPost
	}

	article := &types.Article{
		Title:           title,
		Content:         body,
		Date:            g.now().Format(types.DateLayout),
		Tags:            []string{req.Topic, string(req.Style)},
		Type:            contentType.DocumentType(),
		Length:          req.Length,
		TargetWordCount: req.Length.TargetWords(),
		CodeExamples:    []types.CodeExample{},
	}
	if req.IncludeCode {
		article.CodeExamples = render.ExtractCodeExamples(body, "generated")
	}

	log.Info("generated article", "title", title, "words", len(strings.Fields(body)))
	return article, nil
}

// GenerateTutorial is Generate pinned to the Tutorial style. difficulty is
// accepted but does not change the prompt.
func (g *Generator) GenerateTutorial(ctx context.Context, topic string, difficulty types.Difficulty, length types.Length) (*types.Article, error) {
	g.logger.Debug("tutorial difficulty is not used by the prompt", "difficulty", difficulty)
	return g.Generate(ctx, types.GenerationRequest{
		Topic:       topic,
		Style:       types.StyleTutorial,
		Length:      length,
		Difficulty:  difficulty,
		ContentType: types.ContentTutorial,
	})
}

func (g *Generator) generateSingle(ctx context.Context, req types.GenerationRequest, model types.ModelConfig, contextText string) (string, string, error) {
	prompt, err := renderPrompt(articleTmpl, articleData{
		Topic:       req.Topic,
		Instruction: styleInstruction(req.Style),
		Words:       req.Length.TargetWords(),
		Context:     contextText,
	})
	if err != nil {
		return "", "", fmt.Errorf("rendering article prompt: %w", err)
	}

	out, err := g.complete(ctx, "article", modelRequest(model, writerSystemPrompt, prompt))
	if err != nil {
		return "", "", err
	}
	title, body := ParseArticle(out)
	return title, body, nil
}

// generateSections writes each of Sections with its own completion call and
// a separate title call. Calls run concurrently up to the configured limit;
// outputs are joined in section order. Sections never see each other's
// text. The first failure cancels the remaining calls.
func (g *Generator) generateSections(ctx context.Context, req types.GenerationRequest, model types.ModelConfig, contextText string) (string, string, error) {
	words := req.Length.TargetWords() / len(Sections)
	instruction := styleInstruction(req.Style)

	parts := make([]string, len(Sections))
	var title string

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)

	for i, name := range Sections {
		i, name := i, name
		eg.Go(func() error {
			prompt, err := renderPrompt(sectionTmpl, sectionData{
				Topic:       req.Topic,
				Instruction: instruction,
				Section:     name,
				Index:       i + 1,
				Total:       len(Sections),
				Words:       words,
				Context:     contextText,
			})
			if err != nil {
				return fmt.Errorf("rendering section prompt: %w", err)
			}
			out, err := g.complete(egCtx, "section "+name, modelRequest(model, writerSystemPrompt, prompt))
			if err != nil {
				return err
			}
			parts[i] = strings.TrimSpace(out)
			g.logger.Debug("generated section", "section", name, "index", i+1)
			return nil
		})
	}

	eg.Go(func() error {
		prompt, err := renderPrompt(titleTmpl, titleData{
			Topic:   req.Topic,
			Style:   req.Style,
			Words:   req.Length.TargetWords(),
			Outline: strings.Join(Sections, "; "),
		})
		if err != nil {
			return fmt.Errorf("rendering title prompt: %w", err)
		}
		titleReq := modelRequest(model, titleSystemPrompt, prompt)
		titleReq.MaxTokens = titleMaxTokens
		out, err := g.complete(egCtx, "title", titleReq)
		if err != nil {
			return err
		}
		title = cleanTitle(out)
		return nil
	})

	if err := eg.Wait(); err != nil {
		return "", "", err
	}
	return title, strings.Join(parts, "\n\n"), nil
}

// complete calls the model and wraps failures as provider errors. Blank
// output counts as a failure.
func (g *Generator) complete(ctx context.Context, op string, req llm.Request) (string, error) {
	out, err := g.llm.Complete(ctx, req)
	if err == nil && strings.TrimSpace(out) == "" {
		err = ErrEmptyCompletion
	}
	if err != nil {
		return "", &types.ProviderError{Provider: completionProvider, Op: op, Err: err}
	}
	return out, nil
}

func modelRequest(model types.ModelConfig, system, user string) llm.Request {
	return llm.Request{
		Model:           model.Model,
		Messages:        []llm.Message{llm.System(system), llm.User(user)},
		MaxTokens:       model.MaxTokens,
		Temperature:     model.Temperature,
		PresencePenalty: model.PresencePenalty,
	}
}

// ParseArticle splits model output into a title (the first line, heading
// markers removed) and a body (every following line, trimmed).
func ParseArticle(text string) (title, body string) {
	text = strings.TrimSpace(text)
	first, rest, _ := strings.Cut(text, "\n")
	return cleanTitle(first), strings.TrimSpace(rest)
}

func cleanTitle(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimLeft(s, "#"))
	s = strings.TrimPrefix(s, "Title:")
	return strings.Trim(strings.TrimSpace(s), `"*`)
}
