package thread

import (
	"time"
	"unicode/utf8"
)

// Message roles. Stored as plain strings for compatibility with the
// persisted documents and the chat-completions wire format.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// TitleMaxLen bounds thread titles derived from messages or filenames.
const TitleMaxLen = 50

// Message is one turn's content within a thread. Messages are append-only
// and have no identity outside their thread.
type Message struct {
	Role      string    `bson:"role" json:"role"`
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Thread is a persisted conversation. The id is supplied by the client on
// first creation and never changes.
type Thread struct {
	ID        string    `bson:"_id" json:"_id"`
	Title     string    `bson:"title" json:"title"`
	Messages  []Message `bson:"messages" json:"messages"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// New builds an in-memory thread; nothing is persisted until Save.
func New(id, title string) *Thread {
	return &Thread{
		ID:    id,
		Title: TruncateTitle(title),
	}
}

// Append adds a message to the in-memory sequence, preserving insertion order.
func (t *Thread) Append(role, content string) {
	t.Messages = append(t.Messages, Message{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
}

// TruncateTitle cuts a title to TitleMaxLen runes.
func TruncateTitle(s string) string {
	if s == "" {
		return "New Chat"
	}
	if utf8.RuneCountInString(s) <= TitleMaxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:TitleMaxLen])
}
