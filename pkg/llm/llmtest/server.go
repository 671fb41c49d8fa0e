// Package llmtest serves canned chat-completion replies for tests.
package llmtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/msgdesk/pkg/config"
	"github.com/msgdesk/pkg/llm"
	"go.uber.org/zap"
)

// Request is what the fake endpoint captured from one call.
type Request struct {
	Authorization string
	Body          map[string]any
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	content  string
	requests []Request
}

// New starts a server that answers every chat completion with content.
func New(t *testing.T, content string) *Server {
	t.Helper()
	s := &Server{status: http.StatusOK, content: content}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Failing starts a server that answers every request with status.
func Failing(t *testing.T, status int) *Server {
	t.Helper()
	s := New(t, "")
	s.status = status
	return s
}

// Client returns an llm.Client pointed at the server.
func (s *Server) Client() *llm.Client {
	return llm.NewClient(config.LLM{BaseURL: s.URL + "/v1", APIKey: "test-key"}, zap.NewNop())
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{Authorization: r.Header.Get("Authorization"), Body: body})
	status, content := s.status, s.content
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream unavailable","type":"server_error"}}`))
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 0,
		"model":   llm.Model,
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
}
