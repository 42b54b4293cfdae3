// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API credentials from a directory of plain-text files
// and the environment. Each file in the directory holds one secret: the
// filename is the key name and the trimmed file contents are the value.
//
// Required keys: exa-api-key, openai-api-key. The environment variables
// EXA_API_KEY and OPENAI_API_KEY fill in keys that have no file.
package secrets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/techblog-engine/pkg/types"
)

// Key names recognized by the pipeline.
const (
	ExaAPIKey    = "exa-api-key"
	OpenAIAPIKey = "openai-api-key"
)

// envFallback maps a key file name to the environment variable read when
// the file is absent.
var envFallback = map[string]string{
	ExaAPIKey:    "EXA_API_KEY",
	OpenAIAPIKey: "OPENAI_API_KEY",
}

// Load reads all files in dir and returns a map of filename to trimmed
// contents, then fills known keys from the environment where no file set
// them. A missing directory is not an error. Unreadable files are logged
// and skipped.
func Load(dir string) (map[string]string, error) {
	secrets := make(map[string]string)

	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			slog.Warn("could not read secret", "name", name, "err", err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}

	for key, env := range envFallback {
		if _, ok := secrets[key]; ok {
			continue
		}
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			secrets[key] = v
		}
	}

	return secrets, nil
}

// Require returns a *types.MissingCredentialError naming every key that is
// absent or empty in secrets.
func Require(secrets map[string]string, keys ...string) error {
	var missing []string
	for _, k := range keys {
		if secrets[k] == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &types.MissingCredentialError{Keys: missing}
}

// Names returns the sorted key names in secrets, for logging without values.
func Names(secrets map[string]string) []string {
	keys := make([]string, 0, len(secrets))
	for k := range secrets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
