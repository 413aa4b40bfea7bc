// Package model provides the chat-completion client for the assistant's
// text-generation backend.
package model

import "context"

// Message is one turn of a chat-completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat-completion roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Completer is the narrow contract the dialogue core has on the
// text-generation service.
type Completer interface {
	// Complete runs a chat completion over the ordered message list.
	Complete(ctx context.Context, messages []Message, temperature float64) (string, error)

	// Name returns the model identifier.
	Name() string
}

// System builds a system-role message.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User builds a user-role message.
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Assistant builds an assistant-role message.
func Assistant(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
