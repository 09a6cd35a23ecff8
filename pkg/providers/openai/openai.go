// Package openai provides an Adapter for OpenAI-compatible Chat Completions
// APIs. OpenAI, Groq and Perplexity share this envelope and differ only in
// endpoint, pinned model and whether temperature is sent.
package openai

import (
	"fmt"

	"github.com/germanamz/minutes/pkg/modeladapter"
	"github.com/germanamz/minutes/pkg/modeladapter/usage"
	"github.com/germanamz/minutes/pkg/providers/provider"
)

var _ provider.Adapter = (*Adapter)(nil)

// Adapter implements provider.Adapter for the chat-messages envelope.
type Adapter struct {
	modeladapter.ModelAdapter
	id string
}

// New creates an Adapter for d.
func New(d provider.Descriptor) *Adapter {
	return &Adapter{
		ModelAdapter: provider.Base(d),
		id:           d.ID,
	}
}

// --- request types ---

type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
	Temperature *float64     `json:"temperature,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Build produces a chat completion request with prompt as the only user message.
func (a *Adapter) Build(prompt, credential string) (modeladapter.Request, error) {
	base := a.WithKey(credential)

	req, err := base.NewRequest(apiRequest{
		Model:       a.Name,
		Messages:    []apiMessage{{Role: "user", Content: prompt}},
		MaxTokens:   a.MaxTokens,
		Temperature: a.Temperature,
	})
	if err != nil {
		return modeladapter.Request{}, fmt.Errorf("openai: %w", err)
	}

	return req, nil
}

// Extract returns choices[0].message.content.
func (a *Adapter) Extract(body []byte) (provider.Completion, error) {
	root, err := provider.ParseBody(a.id, body)
	if err != nil {
		return provider.Completion{}, err
	}

	text, err := provider.TextAt(a.id, root, "choices.0.message.content", "choices[0].message.content")
	if err != nil {
		return provider.Completion{}, err
	}

	return provider.Completion{
		Text: text,
		Usage: usage.TokenCount{
			InputTokens:  int(root.Get("usage.prompt_tokens").Int()),
			OutputTokens: int(root.Get("usage.completion_tokens").Int()),
		},
	}, nil
}
