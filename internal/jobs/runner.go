// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jobs runs generation requests end to end: it dispatches by
// content type, attaches metadata, formats the document, and writes or
// archives the result. Batches of requests come from a YAML jobs file.
package jobs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/pdiddy/techblog-engine/internal/archive"
	"github.com/pdiddy/techblog-engine/internal/export"
	"github.com/pdiddy/techblog-engine/internal/render"
	"github.com/pdiddy/techblog-engine/pkg/types"
)

// Generator writes articles.
type Generator interface {
	Generate(ctx context.Context, req types.GenerationRequest) (*types.Article, error)
	GenerateTutorial(ctx context.Context, topic string, difficulty types.Difficulty, length types.Length) (*types.Article, error)
}

// TrendReporter builds trend reports.
type TrendReporter interface {
	GenerateTrendReport(ctx context.Context, technology string) *types.TrendReport
}

// Archiver stores produced documents.
type Archiver interface {
	Save(ctx context.Context, e archive.Entry) (string, error)
}

// Runner produces documents. Generator, Trends, and Processor are required;
// Archive and OutputDir are optional.
type Runner struct {
	Generator Generator
	Trends    TrendReporter
	Processor *render.Processor

	// Archive, when set, receives every produced document.
	Archive Archiver

	// OutputDir, when set, receives one file per document.
	OutputDir string

	Logger *slog.Logger
	Now    func() time.Time
}

// Result is one produced document.
type Result struct {
	Document  render.Document
	Output    string
	Words     int
	Path      string
	ArchiveID string

	// ContentType is the MIME type of Output.
	ContentType string
}

// Produce runs req and formats the document as format. The format is
// checked before any provider call is made.
func (r *Runner) Produce(ctx context.Context, req types.GenerationRequest, format types.OutputFormat) (*Result, error) {
	if !render.Supported(format) {
		return nil, &types.UnsupportedFormatError{Format: string(format)}
	}

	doc, err := r.document(ctx, req)
	if err != nil {
		return nil, err
	}
	doc = render.AddMetadata(doc)

	out, err := r.Processor.Process(doc, format)
	if err != nil {
		return nil, err
	}
	ctype, err := export.MIMEType(format)
	if err != nil {
		return nil, err
	}
	res := &Result{Document: doc, Output: out, Words: render.WordCount(out, format), ContentType: ctype}

	if r.OutputDir != "" {
		path, err := export.Write(r.OutputDir, req.Topic, r.now(), format, out)
		if err != nil {
			return nil, err
		}
		res.Path = path
	}

	if r.Archive != nil {
		id, err := r.Archive.Save(ctx, archive.NewEntry(req, doc, format, out))
		if err != nil {
			return nil, fmt.Errorf("archiving: %w", err)
		}
		res.ArchiveID = id
	}

	r.logger().Info("produced document",
		"topic", req.Topic, "content_type", req.ContentType, "format", format,
		"words", res.Words, "path", res.Path)
	return res, nil
}

// document dispatches on content type. Technical guides use the blog post
// pipeline; only the recorded type differs.
func (r *Runner) document(ctx context.Context, req types.GenerationRequest) (render.Document, error) {
	switch req.ContentType {
	case types.ContentTrendReport:
		if strings.TrimSpace(req.Topic) == "" {
			return nil, fmt.Errorf("topic is required")
		}
		return r.Trends.GenerateTrendReport(ctx, req.Topic), nil
	case types.ContentTutorial:
		if strings.TrimSpace(req.Topic) == "" {
			return nil, fmt.Errorf("topic is required")
		}
		return r.Generator.GenerateTutorial(ctx, req.Topic, req.Difficulty, req.Length)
	case types.ContentBlogPost, types.ContentTechnicalGuide, "":
		return r.Generator.Generate(ctx, req)
	}
	return nil, fmt.Errorf("unknown content type %q", req.ContentType)
}

// BatchSummary holds counts from a batch run.
type BatchSummary struct {
	Generated int
	Failed    int
	Paths     []string
}

// Total returns the number of jobs processed.
func (s BatchSummary) Total() int {
	return s.Generated + s.Failed
}

// HasFailures reports whether any job failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}

// Run produces every job in order, printing one status line per job to w.
// It continues after individual failures and stops early only when ctx is
// done.
func (r *Runner) Run(ctx context.Context, jobs []Job, w io.Writer) BatchSummary {
	var summary BatchSummary
	for i, job := range jobs {
		if ctx.Err() != nil {
			fmt.Fprintf(w, "stopped: %v\n", ctx.Err())
			summary.Failed += len(jobs) - i
			break
		}

		res, err := r.Produce(ctx, job.Request, job.Format)
		if err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", job.Request.Topic, err)
			summary.Failed++
			continue
		}
		summary.Generated++
		if res.Path != "" {
			summary.Paths = append(summary.Paths, res.Path)
		}
		fmt.Fprintf(w, "generated: %s (%d words) %s\n", job.Request.Topic, res.Words, res.Path)
	}

	fmt.Fprintf(w, "\ngenerated: %d, failed: %d\n", summary.Generated, summary.Failed)
	return summary
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
