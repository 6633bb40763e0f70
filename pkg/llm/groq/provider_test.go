package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LucasRomanSaad/stoicChatBOT/pkg/llm"
)

func newTestServer(t *testing.T, handler func(w http.ResponseWriter, req groqChatRequest)) (*httptest.Server, *GroqProvider) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer test key", got)
		}
		var req groqChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		handler(w, req)
	}))
	t.Cleanup(srv.Close)

	provider := NewGroqProvider("test-key", "llama3-70b-8192")
	provider.BaseURL = srv.URL
	return srv, provider
}

func TestChatMissingApiKey(t *testing.T) {
	provider := NewGroqProvider("", "llama3-70b-8192")

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})
	if err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestChatSendsDefaultsAndMapsRoles(t *testing.T) {
	_, provider := newTestServer(t, func(w http.ResponseWriter, req groqChatRequest) {
		if req.Model != "llama3-70b-8192" {
			t.Errorf("model = %q", req.Model)
		}
		if req.Temperature != 0.3 || req.TopP != 0.9 {
			t.Errorf("sampling defaults not applied: temp=%v top_p=%v", req.Temperature, req.TopP)
		}
		if len(req.Messages) != 2 {
			t.Fatalf("got %d messages", len(req.Messages))
		}
		if req.Messages[1].Role != "assistant" {
			t.Errorf("role %q not normalized to assistant", req.Messages[1].Role)
		}

		json.NewEncoder(w).Encode(groqChatResponse{
			Choices: []struct {
				Message groqMessage `json:"message"`
			}{{Message: groqMessage{Role: "assistant", Content: "Be kind."}}},
		})
	})

	completion, err := provider.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "hello"},
		{Role: "model", Content: "hi there"},
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if completion.Content != "Be kind." {
		t.Errorf("content = %q", completion.Content)
	}
}

func TestChatOptionsOverrideDefaults(t *testing.T) {
	_, provider := newTestServer(t, func(w http.ResponseWriter, req groqChatRequest) {
		if req.Model != "llama3-8b-8192" {
			t.Errorf("model override not applied: %q", req.Model)
		}
		if req.MaxTokens != 500 {
			t.Errorf("max_tokens = %d, want 500", req.MaxTokens)
		}

		resp := groqChatResponse{
			Choices: []struct {
				Message groqMessage `json:"message"`
			}{{Message: groqMessage{Role: "assistant", Content: "ok"}}},
		}
		resp.Usage.PromptTokens = 42
		resp.Usage.CompletionTokens = 7
		json.NewEncoder(w).Encode(resp)
	})

	completion, err := provider.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "hello"}},
		llm.WithModel("llama3-8b-8192"),
		llm.WithMaxTokens(500),
	)
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	// Usage and the answering model are reported back to the caller.
	if completion.PromptTokens != 42 || completion.CompletionTokens != 7 {
		t.Errorf("usage = %d/%d", completion.PromptTokens, completion.CompletionTokens)
	}
	if completion.Model != "llama3-8b-8192" {
		t.Errorf("model = %q", completion.Model)
	}
}

func TestChatUpstreamError(t *testing.T) {
	_, provider := newTestServer(t, func(w http.ResponseWriter, _ groqChatRequest) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limit"}`))
	})

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hello"}})
	if err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestChatNoChoices(t *testing.T) {
	_, provider := newTestServer(t, func(w http.ResponseWriter, _ groqChatRequest) {
		json.NewEncoder(w).Encode(groqChatResponse{})
	})

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hello"}})
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}
