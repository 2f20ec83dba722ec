package reasoner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"smart-todo/pkg/log"
	"smart-todo/pkg/openai"
)

var (
	ErrEmptyResponse     = errors.New("empty response from model")
	ErrMalformedResponse = errors.New("model response is not a JSON object")
)

// Call is one structured completion request. Instruction sets the system
// role, Prompt carries the user content. The model is always constrained
// to emit a single JSON object.
type Call struct {
	Instruction string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Reasoner wraps the chat-completions client with the JSON-object
// request shape and response sanitization every workflow shares.
type Reasoner struct {
	l      log.Logger
	client openai.IOpenAI
}

// New creates a Reasoner over the given client.
func New(l log.Logger, client openai.IOpenAI) *Reasoner {
	return &Reasoner{l: l, client: client}
}

// Complete runs one call and returns the decoded JSON object.
func (r *Reasoner) Complete(ctx context.Context, call Call) (map[string]any, error) {
	req := &openai.Request{
		Messages: []openai.Message{
			{Role: openai.RoleSystem, Content: call.Instruction},
			{Role: openai.RoleUser, Content: call.Prompt},
		},
		Temperature:    call.Temperature,
		MaxTokens:      call.MaxTokens,
		ResponseFormat: &openai.ResponseFormat{Type: openai.ResponseFormatJSONObject},
	}

	resp, err := r.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, ErrEmptyResponse
	}

	raw := resp.Choices[0].Message.Content
	cleaned := sanitizeJSONResponse(raw)

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		r.l.Errorf(ctx, "reasoner: failed to decode model response. Raw=%q Cleaned=%q", raw, cleaned)
		return nil, ErrMalformedResponse
	}
	return obj, nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that models often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
