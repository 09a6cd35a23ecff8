// Package gemini provides an Adapter for the Google Gemini generateContent API.
package gemini

import (
	"fmt"

	"github.com/germanamz/minutes/pkg/modeladapter"
	"github.com/germanamz/minutes/pkg/modeladapter/usage"
	"github.com/germanamz/minutes/pkg/providers/provider"
)

var _ provider.Adapter = (*Adapter)(nil)

// Adapter implements provider.Adapter for the gemini-contents envelope. The
// model is addressed by the endpoint URL and the credential travels in the
// "key" query parameter.
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
	Contents []apiContent `json:"contents"`
}

type apiContent struct {
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text string `json:"text"`
}

// Build produces a generateContent request with prompt as a single text part.
func (a *Adapter) Build(prompt, credential string) (modeladapter.Request, error) {
	base := a.WithKey(credential)

	req, err := base.NewRequest(apiRequest{
		Contents: []apiContent{{Parts: []apiPart{{Text: prompt}}}},
	})
	if err != nil {
		return modeladapter.Request{}, fmt.Errorf("gemini: %w", err)
	}

	return req, nil
}

// Extract returns candidates[0].content.parts[0].text.
func (a *Adapter) Extract(body []byte) (provider.Completion, error) {
	root, err := provider.ParseBody(a.id, body)
	if err != nil {
		return provider.Completion{}, err
	}

	text, err := provider.TextAt(a.id, root, "candidates.0.content.parts.0.text", "candidates[0].content.parts[0].text")
	if err != nil {
		return provider.Completion{}, err
	}

	return provider.Completion{
		Text: text,
		Usage: usage.TokenCount{
			InputTokens:  int(root.Get("usageMetadata.promptTokenCount").Int()),
			OutputTokens: int(root.Get("usageMetadata.candidatesTokenCount").Int()),
		},
	}, nil
}
