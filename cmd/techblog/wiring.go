// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/techblog-engine/internal/archive"
	"github.com/pdiddy/techblog-engine/internal/generate"
	"github.com/pdiddy/techblog-engine/internal/jobs"
	"github.com/pdiddy/techblog-engine/internal/llm"
	"github.com/pdiddy/techblog-engine/internal/render"
	"github.com/pdiddy/techblog-engine/internal/search"
	"github.com/pdiddy/techblog-engine/internal/secrets"
	"github.com/pdiddy/techblog-engine/internal/trends"
	"github.com/pdiddy/techblog-engine/pkg/types"
)

// newSearchBackend builds the Exa backend. It fails when exa-api-key is
// missing.
func newSearchBackend(cfg types.PipelineConfig) (*search.ExaBackend, error) {
	if err := secrets.Require(loadedSecrets, secrets.ExaAPIKey); err != nil {
		return nil, err
	}
	return search.NewExaBackend(&http.Client{Timeout: cfg.Search.Timeout}, cfg.Search)
}

// newGenerator builds a generator over OpenAI and Exa. Both credentials are
// checked before anything else runs.
func newGenerator(cfg types.PipelineConfig) (*generate.Generator, error) {
	if err := secrets.Require(loadedSecrets, secrets.ExaAPIKey, secrets.OpenAIAPIKey); err != nil {
		return nil, err
	}
	completer, err := llm.NewOpenAI(cfg.OpenAI)
	if err != nil {
		return nil, err
	}
	backend, err := newSearchBackend(cfg)
	if err != nil {
		return nil, err
	}
	return generate.New(completer, backend, generate.Options{
		Generation:  cfg.Generation,
		RecencyDays: cfg.Search.RecencyDays,
		Logger:      slog.Default(),
	})
}

// newRunner wires the full produce pipeline. needsGenerator is false for
// trend reports, which make no provider calls. The returned cleanup closes
// the archive when one was opened.
func newRunner(cmd *cobra.Command, cfg types.PipelineConfig, needsGenerator bool) (*jobs.Runner, func(), error) {
	r := &jobs.Runner{
		Trends:    trends.New(trends.WithLogger(slog.Default())),
		Processor: render.NewProcessor(),
		Logger:    slog.Default(),
	}
	if needsGenerator {
		gen, err := newGenerator(cfg)
		if err != nil {
			return nil, nil, err
		}
		r.Generator = gen
	}

	if stdout, _ := cmd.Flags().GetBool("stdout"); !stdout {
		r.OutputDir = cfg.Output.Dir
	}

	cleanup := func() {}
	if useArchive, _ := cmd.Flags().GetBool("archive"); useArchive {
		store, err := archive.NewStore(cfg.Archive)
		if err != nil {
			return nil, nil, err
		}
		r.Archive = store
		cleanup = func() { store.Close() }
	}
	return r, cleanup, nil
}

// generationContext bounds one command's provider calls by generation.timeout.
func generationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), viper.GetDuration("generation.timeout"))
}

// generationError is the user-facing form of any failure while producing
// content.
func generationError(err error) error {
	return fmt.Errorf("error generating content: %w", err)
}

// addOutputFlags registers the flags shared by every command that produces
// a document and binds them to the config keys they override.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "output format: markdown, html, or json (default from config: markdown)")
	cmd.Flags().String("output-dir", "", "directory for generated files (default from config: output)")
	cmd.Flags().Bool("stdout", false, "print the document instead of writing a file")
	cmd.Flags().Bool("archive", false, "save the document in the local archive")
	cmd.Flags().Duration("timeout", 0, "limit for the whole generation (default 5m)")
}

// applyOutputFlags copies set flag values over the config.
func applyOutputFlags(cmd *cobra.Command, cfg *types.PipelineConfig) error {
	if cmd.Flags().Changed("output-dir") {
		cfg.Output.Dir, _ = cmd.Flags().GetString("output-dir")
	}
	if cmd.Flags().Changed("timeout") {
		d, _ := cmd.Flags().GetDuration("timeout")
		viper.Set("generation.timeout", d)
	}
	raw := string(cfg.Output.Format)
	if cmd.Flags().Changed("format") {
		raw, _ = cmd.Flags().GetString("format")
	}
	format, err := types.ParseOutputFormat(raw)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	return nil
}

// report prints the result summary the way every producing command does.
func report(cmd *cobra.Command, res *jobs.Result) {
	out := cmd.OutOrStdout()
	stdout, _ := cmd.Flags().GetBool("stdout")
	if stdout {
		fmt.Fprintln(out, res.Output)
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Generated article length: %d words\n", res.Words)
	if res.Path != "" {
		fmt.Fprintf(out, "Wrote %s (%s)\n", res.Path, res.ContentType)
	}
	if res.ArchiveID != "" {
		fmt.Fprintf(out, "Archived as %s\n", res.ArchiveID)
	}
}
