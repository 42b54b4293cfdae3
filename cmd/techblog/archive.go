// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/techblog-engine/internal/archive"
	"github.com/pdiddy/techblog-engine/internal/search"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Browse the local archive of generated documents",
	Long: `Archive manages the SQLite database that generate, tutorial, trends, and
batch write to when run with --archive. Titles and bodies are indexed for
full-text search.`,
}

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived documents, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(cmd, func(ctx context.Context, s *archive.Store) error {
			entries, err := s.List(ctx, limitFlag(cmd))
			if err != nil {
				return err
			}
			return printEntries(cmd, entries)
		})
	},
}

var archiveSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over archived titles and bodies",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(cmd, func(ctx context.Context, s *archive.Store) error {
			entries, err := s.Search(ctx, strings.Join(args, " "), limitFlag(cmd))
			if err != nil {
				return err
			}
			return printEntries(cmd, entries)
		})
	},
}

var archiveShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print an archived document as it was rendered",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withArchive(cmd, func(ctx context.Context, s *archive.Store) error {
			e, err := s.Get(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Rendered)
			return nil
		})
	},
}

var archiveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the archive to YAML or JSON",
	Long: `Export writes every archived document (without its rendered output) to
{archive dir}/export.yaml or export.json, or to --out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := flagString(cmd, "format")
		return withArchive(cmd, func(ctx context.Context, s *archive.Store) error {
			path := flagString(cmd, "out")
			var (
				n   int
				err error
			)
			switch format {
			case "yaml", "":
				if path == "" {
					path = filepath.Join(s.Dir(), "export.yaml")
				}
				n, err = s.ExportYAML(ctx, path)
			case "json":
				if path == "" {
					path = filepath.Join(s.Dir(), "export.json")
				}
				n, err = s.ExportJSON(ctx, path)
			default:
				return fmt.Errorf("unsupported export format %q: use yaml or json", format)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d documents to %s\n", n, path)
			return nil
		})
	},
}

func withArchive(cmd *cobra.Command, fn func(context.Context, *archive.Store) error) error {
	cfg := pipelineConfig()
	if cmd.Flags().Changed("archive-dir") {
		cfg.Archive.Dir = flagString(cmd, "archive-dir")
	}
	s, err := archive.NewStore(cfg.Archive)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(cmd.Context(), s)
}

func limitFlag(cmd *cobra.Command) int {
	n, _ := cmd.Flags().GetInt("limit")
	return n
}

func printEntries(cmd *cobra.Command, entries []archive.Entry) error {
	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(out, entries)
	}
	formatEntries(entries, out)
	return nil
}

// formatEntries writes entries as a table.
func formatEntries(entries []archive.Entry, w io.Writer) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No documents found.")
		return
	}

	fmt.Fprintf(w, "%-36s  %-16s  %-15s  %-8s  %s\n", "ID", "Created", "Type", "Format", "Title")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for _, e := range entries {
		title := e.Title
		if len([]rune(title)) > 40 {
			title = search.Truncate(title, 37) + "..."
		}
		fmt.Fprintf(w, "%-36s  %-16s  %-15s  %-8s  %s\n",
			e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04"), e.ContentType, e.Format, title)
	}
	fmt.Fprintf(w, "\n%d documents\n", len(entries))
}

func init() {
	archiveCmd.PersistentFlags().String("archive-dir", "", "archive directory (default from config: archive)")

	for _, c := range []*cobra.Command{archiveListCmd, archiveSearchCmd} {
		c.Flags().Int("limit", 0, "maximum results (0 = use default)")
		c.Flags().Bool("json", false, "output results as JSON")
	}
	archiveExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	archiveExportCmd.Flags().String("out", "", "export file path")

	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveSearchCmd)
	archiveCmd.AddCommand(archiveShowCmd)
	archiveCmd.AddCommand(archiveExportCmd)

	rootCmd.AddCommand(archiveCmd)
}
