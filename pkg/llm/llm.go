package llm

import "context"

// Message mirrors the chat-completions wire roles.
type Message struct {
	Role    string
	Content string
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
// maxTokens caps generated output on the request side; zero means no cap.
type ChatModel interface {
	Complete(ctx context.Context, messages []Message, maxTokens int) (string, error)
}
