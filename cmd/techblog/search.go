// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/techblog-engine/internal/search"
	"github.com/pdiddy/techblog-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search recent web content",
	Long: `Search runs a query against Exa restricted to documents published in the
last --days days and prints the results. Use --save to keep them as a YAML
result file, and --load to print a saved file without querying again.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if load, _ := cmd.Flags().GetString("load"); load != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("days", 0, "publication window in days (default from config: 30)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "write results to this YAML file")
	searchCmd.Flags().String("load", "", "print results from a saved YAML file")
	searchCmd.MarkFlagsMutuallyExclusive("save", "load")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if path, _ := cmd.Flags().GetString("load"); path != "" {
		rf, err := search.ReadResultFile(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Loaded %d results for %q (%s, cutoff %s)\n",
			len(rf.Results), rf.Query.Text, rf.Query.Backend, rf.Query.Cutoff)
		return printResults(cmd, rf.Results)
	}

	cfg := pipelineConfig()
	backend, err := newSearchBackend(cfg)
	if err != nil {
		return err
	}

	days, _ := cmd.Flags().GetInt("days")
	if days <= 0 {
		days = cfg.Search.RecencyDays
	}
	query := strings.Join(args, " ")

	ctx, cancel := generationContext()
	defer cancel()

	results, err := search.RecentContent(ctx, backend, query, days)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := search.WriteResultFile(path, backend.Name(), query, days, results); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved %d results to %s\n", len(results), path)
	}

	return printResults(cmd, results)
}

func printResults(cmd *cobra.Command, results []types.SearchResult) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return search.FormatJSON(results, cmd.OutOrStdout())
	}
	search.FormatTable(results, cmd.OutOrStdout())
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
