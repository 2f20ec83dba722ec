package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smart-todo/pkg/openai"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (openai.IOpenAI, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)

	client, err := openai.New(openai.Config{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: ts.URL,
	})
	if err != nil {
		ts.Close()
		t.Fatalf("failed to create client: %v", err)
	}
	return client, ts
}

func TestCreateChatCompletion(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, ts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
				t.Errorf("unexpected auth header: %s", auth)
			}

			var req openai.Request
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if req.Model != "gpt-4o" {
				t.Errorf("expected default model to be filled in, got %q", req.Model)
			}
			if req.ResponseFormat == nil || req.ResponseFormat.Type != openai.ResponseFormatJSONObject {
				t.Errorf("expected json_object response format, got %+v", req.ResponseFormat)
			}

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"id": "chatcmpl-1",
				"model": "gpt-4o",
				"choices": [
					{"index": 0, "message": {"role": "assistant", "content": "{\"ok\": true}"}, "finish_reason": "stop"}
				],
				"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
			}`))
		})
		defer ts.Close()

		resp, err := client.CreateChatCompletion(context.Background(), &openai.Request{
			Messages: []openai.Message{
				{Role: openai.RoleSystem, Content: "You are a test."},
				{Role: openai.RoleUser, Content: "hello"},
			},
			ResponseFormat: &openai.ResponseFormat{Type: openai.ResponseFormatJSONObject},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Choices) != 1 {
			t.Fatalf("expected 1 choice, got %d", len(resp.Choices))
		}
		if resp.Choices[0].Message.Content != `{"ok": true}` {
			t.Errorf("unexpected content: %s", resp.Choices[0].Message.Content)
		}
	})

	t.Run("API error with envelope", func(t *testing.T) {
		client, ts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"message": "rate limit exceeded", "type": "requests"}}`))
		})
		defer ts.Close()

		_, err := client.CreateChatCompletion(context.Background(), &openai.Request{})
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "rate limit exceeded") {
			t.Errorf("expected API error message, got: %v", err)
		}
	})

	t.Run("API error without envelope", func(t *testing.T) {
		client, ts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`upstream exploded`))
		})
		defer ts.Close()

		_, err := client.CreateChatCompletion(context.Background(), &openai.Request{})
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "500") {
			t.Errorf("expected status code in error, got: %v", err)
		}
	})

	t.Run("malformed response body", func(t *testing.T) {
		client, ts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`not json at all`))
		})
		defer ts.Close()

		_, err := client.CreateChatCompletion(context.Background(), &openai.Request{})
		if err == nil {
			t.Fatal("expected decode error")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		if _, err := openai.New(openai.Config{}); err == nil {
			t.Fatal("expected error for missing API key")
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		client, err := openai.New(openai.Config{APIKey: "k"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.Model() != openai.DefaultModel {
			t.Errorf("expected default model, got %s", client.Model())
		}
	})
}
