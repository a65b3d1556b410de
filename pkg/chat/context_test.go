package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ai-resume-backend/pkg/thread"
)

func TestContextWindow(t *testing.T) {
	history := []thread.Message{
		{Role: thread.RoleUser, Content: "a"},
		{Role: thread.RoleAssistant, Content: "b"},
		{Role: thread.RoleUser, Content: "c"},
		{Role: thread.RoleAssistant, Content: "d"},
		{Role: thread.RoleUser, Content: "e"},
		{Role: thread.RoleAssistant, Content: "f"},
	}

	got := contextWindow(history, 4)
	assert.Len(t, got, 4)
	assert.Equal(t, "c", got[0].Content)
	assert.Equal(t, "f", got[3].Content)
}

func TestContextWindowShortHistory(t *testing.T) {
	history := []thread.Message{
		{Role: thread.RoleUser, Content: "only"},
	}
	got := contextWindow(history, 4)
	assert.Len(t, got, 1)
	assert.Equal(t, thread.RoleUser, got[0].Role)
	assert.Equal(t, "only", got[0].Content)
}

func TestContextWindowEmpty(t *testing.T) {
	assert.Empty(t, contextWindow(nil, 4))
}
