// Package huggingface provides an Adapter for the Hugging Face Inference API
// text-generation task.
package huggingface

import (
	"fmt"

	"github.com/germanamz/minutes/pkg/modeladapter"
	"github.com/germanamz/minutes/pkg/providers/provider"
)

var _ provider.Adapter = (*Adapter)(nil)

// Adapter implements provider.Adapter for the completion-inputs envelope.
// The model is addressed by the endpoint URL.
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
	Inputs     string        `json:"inputs"`
	Parameters apiParameters `json:"parameters"`
}

type apiParameters struct {
	MaxNewTokens   int      `json:"max_new_tokens"`
	Temperature    *float64 `json:"temperature,omitempty"`
	ReturnFullText bool     `json:"return_full_text"`
}

// Build produces a text-generation request that returns only the generated
// continuation, not the echoed prompt.
func (a *Adapter) Build(prompt, credential string) (modeladapter.Request, error) {
	base := a.WithKey(credential)

	req, err := base.NewRequest(apiRequest{
		Inputs: prompt,
		Parameters: apiParameters{
			MaxNewTokens:   a.MaxTokens,
			Temperature:    a.Temperature,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return modeladapter.Request{}, fmt.Errorf("huggingface: %w", err)
	}

	return req, nil
}

// Extract returns [0].generated_text for list responses and generated_text
// otherwise. The API does not report token usage.
func (a *Adapter) Extract(body []byte) (provider.Completion, error) {
	root, err := provider.ParseBody(a.id, body)
	if err != nil {
		return provider.Completion{}, err
	}

	path, display := "generated_text", "generated_text"
	if root.IsArray() {
		path, display = "0.generated_text", "[0].generated_text"
	}

	text, err := provider.TextAt(a.id, root, path, display)
	if err != nil {
		return provider.Completion{}, err
	}

	return provider.Completion{Text: text}, nil
}
