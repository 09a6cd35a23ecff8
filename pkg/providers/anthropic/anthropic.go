// Package anthropic provides an Adapter for the Anthropic Messages API.
package anthropic

import (
	"fmt"

	"github.com/germanamz/minutes/pkg/modeladapter"
	"github.com/germanamz/minutes/pkg/modeladapter/usage"
	"github.com/germanamz/minutes/pkg/providers/provider"
)

var _ provider.Adapter = (*Adapter)(nil)

// Adapter implements provider.Adapter for the anthropic-messages envelope.
// The anthropic-version header comes from the descriptor's fixed headers.
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
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Build produces a Messages API request with prompt as the only user turn.
func (a *Adapter) Build(prompt, credential string) (modeladapter.Request, error) {
	base := a.WithKey(credential)

	req, err := base.NewRequest(apiRequest{
		Model:     a.Name,
		MaxTokens: a.MaxTokens,
		Messages:  []apiMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return modeladapter.Request{}, fmt.Errorf("anthropic: %w", err)
	}

	return req, nil
}

// Extract returns content[0].text.
func (a *Adapter) Extract(body []byte) (provider.Completion, error) {
	root, err := provider.ParseBody(a.id, body)
	if err != nil {
		return provider.Completion{}, err
	}

	text, err := provider.TextAt(a.id, root, "content.0.text", "content[0].text")
	if err != nil {
		return provider.Completion{}, err
	}

	return provider.Completion{
		Text: text,
		Usage: usage.TokenCount{
			InputTokens:  int(root.Get("usage.input_tokens").Int()),
			OutputTokens: int(root.Get("usage.output_tokens").Int()),
		},
	}, nil
}
