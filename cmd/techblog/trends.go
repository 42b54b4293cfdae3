// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/techblog-engine/internal/search"
	"github.com/pdiddy/techblog-engine/internal/trends"
	"github.com/pdiddy/techblog-engine/pkg/types"
)

var trendsCmd = &cobra.Command{
	Use:   "trends <technology>",
	Short: "Produce a trend report for a technology",
	Long: `Trends assembles a report from GitHub activity, tech blogs, and research
papers. None of these sources is connected yet, so reports are empty and
marked "not_implemented". --list-sources prints the sources a report draws
from.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list-sources"); list {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list-sources"); list {
			printSources(cmd.OutOrStdout(), trends.New())
			return nil
		}
		return produce(cmd, types.GenerationRequest{
			Topic:       args[0],
			ContentType: types.ContentTrendReport,
		})
	},
}

func init() {
	trendsCmd.Flags().Bool("list-sources", false, "list trend sources and exit")
	addOutputFlags(trendsCmd)
	rootCmd.AddCommand(trendsCmd)
}

func printSources(w io.Writer, t *trends.Tracker) {
	for _, src := range t.Sources() {
		fmt.Fprintf(w, "%s\tnot connected\n", src)
	}
}

var trackCmd = &cobra.Command{
	Use:   "track <technology>",
	Short: "List recent developments for a technology from web search",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTrack,
}

func init() {
	trackCmd.Flags().Bool("json", false, "output items as JSON")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator(pipelineConfig())
	if err != nil {
		return err
	}
	ctx, cancel := generationContext()
	defer cancel()

	items, err := gen.TrackTechTrends(ctx, strings.Join(args, " "))
	if err != nil {
		return generationError(err)
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(out, items)
	}
	if len(items) == 0 {
		fmt.Fprintln(out, "No developments found.")
		return nil
	}
	for i, item := range items {
		fmt.Fprintf(out, "%d. %s\n   %s\n   %s\n\n", i+1, item.Title, item.URL, oneLine(item.Summary))
	}
	return nil
}

var codeExamplesCmd = &cobra.Command{
	Use:   "code-examples",
	Short: "Collect code examples for a topic from web search",
	Long: `Code-examples searches for "{topic} code examples in {language}" and
prints every fenced code block found in the results with its source URL.`,
	RunE: runCodeExamples,
}

func init() {
	codeExamplesCmd.Flags().String("topic", "", "topic to find examples for (required)")
	codeExamplesCmd.Flags().String("language", "", "programming language (required)")
	codeExamplesCmd.Flags().Bool("json", false, "output examples as JSON")
	_ = codeExamplesCmd.MarkFlagRequired("topic")
	_ = codeExamplesCmd.MarkFlagRequired("language")

	rootCmd.AddCommand(codeExamplesCmd)
}

func runCodeExamples(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator(pipelineConfig())
	if err != nil {
		return err
	}
	ctx, cancel := generationContext()
	defer cancel()

	examples, err := gen.GenerateCodeExamples(ctx, flagString(cmd, "topic"), flagString(cmd, "language"))
	if err != nil {
		return generationError(err)
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(out, examples)
	}
	if len(examples) == 0 {
		fmt.Fprintln(out, "No code examples found.")
		return nil
	}
	for _, ex := range examples {
		fmt.Fprintf(out, "// %s\n```%s\n%s\n```\n\n", ex.Source, ex.Language, ex.Code)
	}
	fmt.Fprintf(out, "%d examples\n", len(examples))
	return nil
}

func oneLine(s string) string {
	return search.Truncate(strings.Join(strings.Fields(s), " "), 120)
}
