// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an article about a topic",
	Long: `Generate builds a search query for the topic, collects web content from
the last 30 days, and writes an article in the requested style and length.

Lengths: short (~800 words), medium (~1500), long (~2500), very_long (~4000).
very_long articles are written section by section.

The content type selects the pipeline: "Trend Report" produces a trend
report instead of an article.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("topic", "", "topic or technology, e.g. Docker (required)")
	generateCmd.Flags().String("style", string(types.StyleTechnical), "Technical, Tutorial, Overview, or Deep Dive")
	generateCmd.Flags().String("length", string(types.LengthMedium), "short, medium, long, or very_long")
	generateCmd.Flags().String("content-type", string(types.ContentBlogPost), "Blog Post, Tutorial, Technical Guide, or Trend Report")
	generateCmd.Flags().String("difficulty", string(types.DifficultyIntermediate), "tutorial difficulty: Beginner, Intermediate, or Advanced")
	generateCmd.Flags().Bool("include-code", false, "extract code blocks from the article into its code examples")
	addOutputFlags(generateCmd)

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req, err := requestFromFlags(cmd)
	if err != nil {
		return generationError(err)
	}
	return produce(cmd, req)
}

var tutorialCmd = &cobra.Command{
	Use:   "tutorial [topic]",
	Short: "Generate a step-by-step tutorial",
	Long: `Tutorial is generate with the Tutorial style and content type. The
difficulty is recorded with the request but does not change the prompt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTutorial,
}

func init() {
	tutorialCmd.Flags().String("topic", "", "tutorial topic (or pass it as the argument)")
	tutorialCmd.Flags().String("difficulty", string(types.DifficultyIntermediate), "Beginner, Intermediate, or Advanced")
	tutorialCmd.Flags().String("length", string(types.LengthMedium), "short, medium, long, or very_long")
	addOutputFlags(tutorialCmd)

	rootCmd.AddCommand(tutorialCmd)
}

func runTutorial(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	if topic == "" && len(args) > 0 {
		topic = args[0]
	}
	difficulty, err := types.ParseDifficulty(flagString(cmd, "difficulty"))
	if err != nil {
		return generationError(err)
	}
	length, err := types.ParseLength(flagString(cmd, "length"))
	if err != nil {
		return generationError(err)
	}
	return produce(cmd, types.GenerationRequest{
		Topic:       topic,
		Style:       types.StyleTutorial,
		Length:      length,
		Difficulty:  difficulty,
		ContentType: types.ContentTutorial,
	})
}

// produce runs req through the full pipeline and reports the result.
func produce(cmd *cobra.Command, req types.GenerationRequest) error {
	cfg := pipelineConfig()
	if err := applyOutputFlags(cmd, &cfg); err != nil {
		return generationError(err)
	}

	runner, cleanup, err := newRunner(cmd, cfg, req.ContentType != types.ContentTrendReport)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := generationContext()
	defer cancel()

	res, err := runner.Produce(ctx, req, cfg.Output.Format)
	if err != nil {
		return generationError(err)
	}
	report(cmd, res)
	return nil
}

func requestFromFlags(cmd *cobra.Command) (types.GenerationRequest, error) {
	style, err := types.ParseStyle(flagString(cmd, "style"))
	if err != nil {
		return types.GenerationRequest{}, err
	}
	length, err := types.ParseLength(flagString(cmd, "length"))
	if err != nil {
		return types.GenerationRequest{}, err
	}
	contentType, err := types.ParseContentType(flagString(cmd, "content-type"))
	if err != nil {
		return types.GenerationRequest{}, err
	}
	difficulty, err := types.ParseDifficulty(flagString(cmd, "difficulty"))
	if err != nil {
		return types.GenerationRequest{}, err
	}
	includeCode, _ := cmd.Flags().GetBool("include-code")

	return types.GenerationRequest{
		Topic:       flagString(cmd, "topic"),
		Style:       style,
		Length:      length,
		Difficulty:  difficulty,
		ContentType: contentType,
		IncludeCode: includeCode,
	}, nil
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
