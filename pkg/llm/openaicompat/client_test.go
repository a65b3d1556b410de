package openaicompat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-resume-backend/pkg/apperror"
	"ai-resume-backend/pkg/llm"
)

func newStubServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestCompleteReturnsContent(t *testing.T) {
	srv := newStubServer(t, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"hello back"},"finish_reason":"stop"}]}`)
	defer srv.Close()

	c := New("test-key", srv.URL, "test-model")
	out, err := c.Complete(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello back", out)
}

func TestCompleteNoChoices(t *testing.T) {
	srv := newStubServer(t, `{"id":"1","object":"chat.completion","choices":[]}`)
	defer srv.Close()

	c := New("test-key", srv.URL, "test-model")
	_, err := c.Complete(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}, 0)
	assert.Equal(t, apperror.Model, apperror.KindOf(err))
}

func TestCompleteEmptyContentRejected(t *testing.T) {
	srv := newStubServer(t, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":""},"finish_reason":"stop"}]}`)
	defer srv.Close()

	c := New("test-key", srv.URL, "test-model")
	_, err := c.Complete(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}, 0)
	assert.Equal(t, apperror.Model, apperror.KindOf(err))
}
