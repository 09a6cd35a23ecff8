package provider

import (
	"fmt"

	"github.com/germanamz/minutes/pkg/modeladapter"
	"github.com/germanamz/minutes/pkg/modeladapter/usage"
)

// Completion is the free text a provider produced, plus token usage when the
// response reports it.
type Completion struct {
	Text  string
	Usage usage.TokenCount
}

// Adapter translates between the canonical prompt and one provider's wire
// format. Implementations are stateless and safe for concurrent use.
type Adapter interface {
	// Build produces the provider request for prompt, authenticated with credential.
	Build(prompt, credential string) (modeladapter.Request, error)
	// Extract pulls the completion text out of a 2xx response body.
	Extract(body []byte) (Completion, error)
}

// Factory creates the Adapter for a descriptor.
type Factory func(d Descriptor) Adapter

// MalformedResponseError is returned when a successful response does not
// contain the text at the path the provider documents.
type MalformedResponseError struct {
	Provider string
	Path     string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("provider: %s: response has no %s", e.Provider, e.Path)
}

// Base converts a descriptor into the shared adapter settings: endpoint,
// auth placement, fixed headers and generation parameters.
func Base(d Descriptor) modeladapter.ModelAdapter {
	auth := modeladapter.Auth{}
	if d.Auth == AuthQueryParam {
		auth.Query = "key"
	}

	a := modeladapter.New(d.Endpoint, auth)
	a.Name = d.Model
	a.MaxTokens = d.MaxOutputTokens
	a.Temperature = d.Temperature
	a.Headers = d.Headers

	return a
}
