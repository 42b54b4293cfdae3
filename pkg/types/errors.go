// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is matched by every *UnsupportedFormatError.
var ErrUnsupportedFormat = errors.New("unsupported format")

// UnsupportedFormatError reports an output format outside markdown, html, json.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %s", e.Format)
}

// Is lets errors.Is match ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// MissingCredentialError reports required secrets that were not found.
// It is fatal at startup.
type MissingCredentialError struct {
	Keys []string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing credentials: %s (add them to the secrets directory or the environment)", strings.Join(e.Keys, ", "))
}

// ProviderError wraps a failed call to the search or completion provider.
// Provider failures are never retried.
type ProviderError struct {
	// Provider names the external service, e.g. "exa" or "openai".
	Provider string

	// Op describes the call that failed, e.g. "search" or "section Introduction and Background".
	Op string

	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
