package service

import "context"

// ChatClient is the interface for the conversational fallback engine
type ChatClient interface {
	// Chat generates a conversational reply given the session history
	Chat(ctx context.Context, history []ChatTurn, message string) (string, error)

	// IsEnabled returns whether the client is configured and ready
	IsEnabled() bool
}

// ChatTurn is one prior exchange in a session's conversation history
type ChatTurn struct {
	Role string // "user" or "model"
	Text string
}

// Ensure GeminiClient implements ChatClient
var _ ChatClient = (*GeminiClient)(nil)
