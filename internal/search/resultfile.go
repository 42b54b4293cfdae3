// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

// ResultFile is the on-disk record of a search and its results, so a run
// can be inspected later without querying the provider again.
type ResultFile struct {
	Query   ResultQuery          `yaml:"query"`
	Results []types.SearchResult `yaml:"results"`
	Summary ResultSummary        `yaml:"summary"`
}

// ResultQuery stores the query in a serializable form.
type ResultQuery struct {
	Text        string `yaml:"text"`
	Backend     string `yaml:"backend"`
	RecencyDays int    `yaml:"recency_days"`
	Cutoff      string `yaml:"cutoff"`
}

// ResultSummary stores result statistics and a timestamp.
type ResultSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultFile saves a search and its results to a YAML file.
func WriteResultFile(path, backend, text string, days int, results []types.SearchResult) error {
	if days <= 0 {
		days = DefaultRecencyDays
	}
	t := now()
	rf := ResultFile{
		Query: ResultQuery{
			Text:        text,
			Backend:     backend,
			RecencyDays: days,
			Cutoff:      Cutoff(t, days).Format(types.DateLayout),
		},
		Results: results,
		Summary: ResultSummary{Total: len(results), Timestamp: t},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
