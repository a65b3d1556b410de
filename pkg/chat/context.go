package chat

import (
	"context"

	"ai-resume-backend/pkg/llm"
	"ai-resume-backend/pkg/thread"
)

// contextWindowSize is the hard cap on prior messages sent to the model:
// the last two user/assistant pairs. Older history stays persisted but is
// invisible to the model for that turn. No token counting, no summarization.
const contextWindowSize = 4

const chatSystemPrompt = "You are a helpful assistant."

// respond builds the bounded request (system prompt, window, new message)
// and performs a single model call.
func (s *service) respond(ctx context.Context, message string, history []thread.Message) (string, error) {
	msgs := make([]llm.Message, 0, contextWindowSize+2)
	msgs = append(msgs, llm.Message{Role: thread.RoleSystem, Content: chatSystemPrompt})
	msgs = append(msgs, contextWindow(history, contextWindowSize)...)
	msgs = append(msgs, llm.Message{Role: thread.RoleUser, Content: message})
	return s.llm.Complete(ctx, msgs, 0)
}

// contextWindow returns at most the last n history entries, in original
// order, reduced to role and content.
func contextWindow(history []thread.Message, n int) []llm.Message {
	if len(history) > n {
		history = history[len(history)-n:]
	}
	out := make([]llm.Message, 0, len(history))
	for _, m := range history {
		out = append(out, llm.Message{Role: m.Role, Content: m.Content})
	}
	return out
}
