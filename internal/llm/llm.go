// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm abstracts the chat-completion provider so the generator can be
// tested against a fake.
package llm

import "context"

// Role values for chat messages.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat message.
type Message struct {
	Role    string
	Content string
}

// Request is a single completion call.
type Request struct {
	Model    string
	Messages []Message

	// MaxTokens bounds the output; 0 leaves the provider default.
	MaxTokens int

	// Temperature and PresencePenalty are sent only when non-zero.
	Temperature     float64
	PresencePenalty float64
}

// Completer returns the text of the first completion choice.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// System and User build the common two-message conversation.
func System(content string) Message { return Message{Role: RoleSystem, Content: content} }

// User builds a user message.
func User(content string) Message { return Message{Role: RoleUser, Content: content} }
