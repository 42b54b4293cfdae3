// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/techblog-engine/internal/jobs"
	"github.com/pdiddy/techblog-engine/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <jobs.yaml>",
	Short: "Generate every job in a YAML jobs file",
	Long: `Batch reads a jobs file with optional defaults and a list of jobs:

  defaults:
    style: Technical
    length: medium
    format: markdown
  jobs:
    - topic: Docker
    - topic: Rust
      style: Deep Dive
      length: long

Jobs run one after another. A failed job is reported and the batch continues.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("output-dir", "", "directory for generated files (default from config: output)")
	batchCmd.Flags().Bool("archive", false, "save every document in the local archive")
	batchCmd.Flags().Duration("timeout", 0, "limit for the whole batch (default 5m per job)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	list, err := jobs.ReadFile(args[0])
	if err != nil {
		return err
	}

	cfg := pipelineConfig()
	if cmd.Flags().Changed("output-dir") {
		cfg.Output.Dir = flagString(cmd, "output-dir")
	}
	runner, cleanup, err := newRunner(cmd, cfg, needsGenerator(list))
	if err != nil {
		return err
	}
	defer cleanup()

	timeout := viper.GetDuration("generation.timeout") * time.Duration(len(list))
	if cmd.Flags().Changed("timeout") {
		timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	summary := runner.Run(ctx, list, cmd.OutOrStdout())
	if summary.HasFailures() {
		return fmt.Errorf("%d of %d job(s) failed", summary.Failed, summary.Total())
	}
	return nil
}

func needsGenerator(list []jobs.Job) bool {
	for _, j := range list {
		if j.Request.ContentType != types.ContentTrendReport {
			return true
		}
	}
	return false
}
