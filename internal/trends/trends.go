// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package trends assembles trend reports for a technology from a fixed set
// of sources. No source is wired to a data provider yet; every collector
// returns an empty list with ErrNotImplemented and reports are marked
// not_implemented.
package trends

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

// DefaultWindowDays is the look-back window for GetRecentTrends.
const DefaultWindowDays = 30

// Source names a kind of trend signal.
type Source string

const (
	SourceGitHub         Source = "github"
	SourceTechBlogs      Source = "tech_blogs"
	SourceResearchPapers Source = "research_papers"
)

// ErrNotImplemented is returned by collectors that have no data provider.
var ErrNotImplemented = errors.New("trend source not implemented")

// Tracker collects trend signals. The zero value is not usable; call New.
type Tracker struct {
	sources []Source
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// WithClock sets the clock used to date reports.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New returns a Tracker over github, tech_blogs, and research_papers.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		sources: []Source{SourceGitHub, SourceTechBlogs, SourceResearchPapers},
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Sources returns the configured sources in order.
func (t *Tracker) Sources() []Source {
	return append([]Source(nil), t.sources...)
}

// GetRecentTrends returns developments for technology published within the
// last days (DefaultWindowDays when days <= 0).
func (t *Tracker) GetRecentTrends(ctx context.Context, technology string, days int) ([]types.TrendItem, error) {
	if days <= 0 {
		days = DefaultWindowDays
	}
	start := t.now().AddDate(0, 0, -days)
	t.logger.Debug("collecting recent trends", "technology", technology, "since", start.Format(types.DateLayout))
	return t.collect(ctx)
}

// AnalyzeGitHubTrends returns repository activity for technology.
func (t *Tracker) AnalyzeGitHubTrends(ctx context.Context, technology string) ([]types.TrendItem, error) {
	t.logger.Debug("collecting github activity", "technology", technology)
	return t.collect(ctx)
}

// FetchTechBlogs returns recent technical blog posts about technology.
func (t *Tracker) FetchTechBlogs(ctx context.Context, technology string) ([]types.TrendItem, error) {
	t.logger.Debug("collecting tech blogs", "technology", technology)
	return t.collect(ctx)
}

// GetResearchPapers returns recent papers about technology.
func (t *Tracker) GetResearchPapers(ctx context.Context, technology string) ([]types.TrendItem, error) {
	t.logger.Debug("collecting research papers", "technology", technology)
	return t.collect(ctx)
}

// GenerateTrendReport runs every collector and assembles the report. It
// does not fail: a collector that returns ErrNotImplemented leaves its list
// empty and marks the report not_implemented. Any other collector error is
// logged and its list left empty.
func (t *Tracker) GenerateTrendReport(ctx context.Context, technology string) *types.TrendReport {
	report := &types.TrendReport{
		Technology: technology,
		Date:       t.now().Format(types.DateLayout),
		Status:     types.TrendsCollected,
	}

	collectors := []struct {
		name string
		dst  *[]types.TrendItem
		run  func(context.Context, string) ([]types.TrendItem, error)
	}{
		{"trends", &report.Trends, func(ctx context.Context, tech string) ([]types.TrendItem, error) {
			return t.GetRecentTrends(ctx, tech, DefaultWindowDays)
		}},
		{"github_activity", &report.GitHubActivity, t.AnalyzeGitHubTrends},
		{"blog_posts", &report.BlogPosts, t.FetchTechBlogs},
		{"research", &report.Research, t.GetResearchPapers},
	}

	for _, c := range collectors {
		items, err := c.run(ctx, technology)
		switch {
		case errors.Is(err, ErrNotImplemented):
			report.Status = types.TrendsNotImplemented
		case err != nil:
			t.logger.Warn("trend collector failed", "collector", c.name, "technology", technology, "error", err)
		}
		if items == nil {
			items = []types.TrendItem{}
		}
		*c.dst = items
	}
	return report
}

// collect is the shared body of the unwired collectors.
func (t *Tracker) collect(context.Context) ([]types.TrendItem, error) {
	return []types.TrendItem{}, ErrNotImplemented
}
