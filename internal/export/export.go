// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export names and writes formatted documents to disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

const timestampLayout = "20060102_150405"

// Filename returns "{topic}_{YYYYMMDD_HHMMSS}.{format}" with the topic
// lower-cased and spaces replaced by underscores. Other characters are kept,
// so a topic containing a path separator is not safe to join without
// Write's sanitizing.
func Filename(topic string, t time.Time, format types.OutputFormat) string {
	name := strings.ReplaceAll(strings.ToLower(topic), " ", "_")
	return fmt.Sprintf("%s_%s.%s", name, t.Format(timestampLayout), format)
}

// MIMEType returns the content type for a format.
func MIMEType(format types.OutputFormat) (string, error) {
	switch format {
	case types.FormatMarkdown:
		return "text/markdown; charset=utf-8", nil
	case types.FormatHTML:
		return "text/html; charset=utf-8", nil
	case types.FormatJSON:
		return "application/json", nil
	}
	return "", &types.UnsupportedFormatError{Format: string(format)}
}

// Write creates dir if needed and writes content to dir/Filename(...). It
// returns the written path.
func Write(dir, topic string, t time.Time, format types.OutputFormat, content string) (string, error) {
	if _, err := MIMEType(format); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	name := strings.NewReplacer("/", "_", `\`, "_").Replace(Filename(topic, t, format))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
