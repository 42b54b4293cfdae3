// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jobs

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

// Spec is one entry of a jobs file. Empty fields take the file defaults.
type Spec struct {
	Topic       string `yaml:"topic"`
	Style       string `yaml:"style,omitempty"`
	Length      string `yaml:"length,omitempty"`
	Format      string `yaml:"format,omitempty"`
	ContentType string `yaml:"content_type,omitempty"`
	Difficulty  string `yaml:"difficulty,omitempty"`
	IncludeCode *bool  `yaml:"include_code,omitempty"`
}

// File is the on-disk jobs file.
//
//	defaults:
//	  style: Technical
//	  length: medium
//	  format: markdown
//	jobs:
//	  - topic: Docker
//	  - topic: Rust
//	    style: deep_dive
//	    length: long
type File struct {
	Defaults Spec   `yaml:"defaults"`
	Jobs     []Spec `yaml:"jobs"`
}

// Job is a resolved jobs-file entry.
type Job struct {
	Request types.GenerationRequest
	Format  types.OutputFormat
}

// ReadFile parses a jobs file and resolves every entry against the
// defaults. An invalid entry fails the whole file with its position.
func ReadFile(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading jobs file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing jobs file %s: %w", path, err)
	}
	return f.Resolve()
}

// Resolve merges each entry with the defaults and parses the enum fields.
// Unset values fall back to Technical, medium, markdown, Blog Post, and
// Intermediate.
func (f File) Resolve() ([]Job, error) {
	if len(f.Jobs) == 0 {
		return nil, fmt.Errorf("jobs file has no jobs")
	}
	jobs := make([]Job, 0, len(f.Jobs))
	for i, s := range f.Jobs {
		job, err := resolve(f.Defaults, s)
		if err != nil {
			return nil, fmt.Errorf("job %d (%q): %w", i+1, s.Topic, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func resolve(defaults, s Spec) (Job, error) {
	if s.Topic == "" {
		return Job{}, fmt.Errorf("topic is required")
	}

	style, err := types.ParseStyle(pick(s.Style, defaults.Style, string(types.StyleTechnical)))
	if err != nil {
		return Job{}, err
	}
	length, err := types.ParseLength(pick(s.Length, defaults.Length, ""))
	if err != nil {
		return Job{}, err
	}
	contentType, err := types.ParseContentType(pick(s.ContentType, defaults.ContentType, ""))
	if err != nil {
		return Job{}, err
	}
	difficulty, err := types.ParseDifficulty(pick(s.Difficulty, defaults.Difficulty, ""))
	if err != nil {
		return Job{}, err
	}
	format, err := types.ParseOutputFormat(pick(s.Format, defaults.Format, ""))
	if err != nil {
		return Job{}, err
	}

	includeCode := false
	switch {
	case s.IncludeCode != nil:
		includeCode = *s.IncludeCode
	case defaults.IncludeCode != nil:
		includeCode = *defaults.IncludeCode
	}

	return Job{
		Request: types.GenerationRequest{
			Topic:       s.Topic,
			Style:       style,
			Length:      length,
			Difficulty:  difficulty,
			ContentType: contentType,
			IncludeCode: includeCode,
		},
		Format: format,
	}, nil
}

func pick(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
