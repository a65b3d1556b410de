package thread

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateTitle(t *testing.T) {
	assert.Equal(t, "New Chat", TruncateTitle(""))
	assert.Equal(t, "short title", TruncateTitle("short title"))

	long := strings.Repeat("x", 80)
	assert.Len(t, TruncateTitle(long), TitleMaxLen)

	// Rune-safe, not byte-safe.
	cyrillic := strings.Repeat("ж", 60)
	got := TruncateTitle(cyrillic)
	assert.Equal(t, strings.Repeat("ж", TitleMaxLen), got)
}

func TestAppendPreservesOrder(t *testing.T) {
	th := New("t1", "title")
	th.Append(RoleUser, "one")
	th.Append(RoleAssistant, "two")
	th.Append(RoleUser, "three")

	assert.Equal(t, "t1", th.ID)
	assert.Len(t, th.Messages, 3)
	assert.Equal(t, "one", th.Messages[0].Content)
	assert.Equal(t, "three", th.Messages[2].Content)
	assert.False(t, th.Messages[0].CreatedAt.IsZero())
}
