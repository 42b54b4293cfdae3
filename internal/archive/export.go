// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportEntry is the exported form of a document. The rendered output is
// left out; it can be regenerated from the title and body.
type ExportEntry struct {
	ID          string `json:"id" yaml:"id"`
	Topic       string `json:"topic" yaml:"topic"`
	ContentType string `json:"content_type" yaml:"content_type"`
	Style       string `json:"style,omitempty" yaml:"style,omitempty"`
	Length      string `json:"length,omitempty" yaml:"length,omitempty"`
	Format      string `json:"format" yaml:"format"`
	Title       string `json:"title" yaml:"title"`
	Body        string `json:"body" yaml:"body"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
}

// ExportYAML writes every archived document, newest first, to path.
func (s *Store) ExportYAML(ctx context.Context, path string) (int, error) {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return 0, err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return 0, fmt.Errorf("marshaling YAML: %w", err)
	}
	return len(entries), writeExport(path, data)
}

// ExportJSON writes every archived document, newest first, to path.
func (s *Store) ExportJSON(ctx context.Context, path string) (int, error) {
	entries, err := s.exportEntries(ctx)
	if err != nil {
		return 0, err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshaling JSON: %w", err)
	}
	return len(entries), writeExport(path, data)
}

func (s *Store) exportEntries(ctx context.Context) ([]ExportEntry, error) {
	docs, err := s.List(ctx, exportLimit)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	entries := make([]ExportEntry, len(docs))
	for i, d := range docs {
		entries[i] = ExportEntry{
			ID:          d.ID,
			Topic:       d.Topic,
			ContentType: string(d.ContentType),
			Style:       string(d.Style),
			Length:      string(d.Length),
			Format:      string(d.Format),
			Title:       d.Title,
			Body:        d.Body,
			CreatedAt:   d.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}
	return entries, nil
}

func writeExport(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
