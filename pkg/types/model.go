// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ModelConfig holds the completion settings used for one length class.
type ModelConfig struct {
	Model           string  `json:"model" yaml:"model"`
	MaxTokens       int     `json:"max_tokens" yaml:"max_tokens"`
	Temperature     float64 `json:"temperature" yaml:"temperature"`
	PresencePenalty float64 `json:"presence_penalty" yaml:"presence_penalty"`
}

// ModelFor returns the model settings for a length class. For very_long,
// MaxTokens applies to each section call.
func ModelFor(l Length) (ModelConfig, error) {
	switch l {
	case LengthShort:
		return ModelConfig{Model: "gpt-3.5-turbo", MaxTokens: 1200, Temperature: 0.7, PresencePenalty: 0.1}, nil
	case LengthMedium:
		return ModelConfig{Model: "gpt-3.5-turbo", MaxTokens: 2500, Temperature: 0.7, PresencePenalty: 0.1}, nil
	case LengthLong:
		return ModelConfig{Model: "gpt-3.5-turbo-16k", MaxTokens: 4000, Temperature: 0.7, PresencePenalty: 0.2}, nil
	case LengthVeryLong:
		return ModelConfig{Model: "gpt-3.5-turbo-16k", MaxTokens: 4000, Temperature: 0.7, PresencePenalty: 0.3}, nil
	}
	return ModelConfig{}, fmt.Errorf("no model configuration for length %q", l)
}

// ContextWindow returns how many search results feed the prompt and how
// many characters of each result's text are kept.
func (l Length) ContextWindow() (results, maxChars int) {
	switch l {
	case LengthLong, LengthVeryLong:
		return 7, 2000
	}
	return 3, 500
}
