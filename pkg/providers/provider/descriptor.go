// Package provider defines the provider catalog and the Adapter capability
// that every provider implementation satisfies.
package provider

import "maps"

// Envelope identifies the request/response JSON convention a provider speaks.
type Envelope string

const (
	EnvelopeCompletionInputs  Envelope = "completion-inputs"
	EnvelopeChatMessages      Envelope = "chat-messages"
	EnvelopeAnthropicMessages Envelope = "anthropic-messages"
	EnvelopeGeminiContents    Envelope = "gemini-contents"
)

// AuthScheme identifies where the credential travels.
type AuthScheme string

const (
	AuthBearerHeader AuthScheme = "bearer-header"
	AuthQueryParam   AuthScheme = "query-param"
)

// Descriptor describes one provider. Descriptors are immutable once they are
// registered in a Catalog; Catalog hands out copies.
type Descriptor struct {
	ID          string
	DisplayName string
	VendorName  string
	Description string

	// Credential shape, used by frontends to label the input.
	CredentialLabel       string
	CredentialPlaceholder string

	Endpoint        string
	Model           string // Pinned model name sent in the body; empty when the endpoint addresses the model.
	Auth            AuthScheme
	Envelope        Envelope
	Headers         map[string]string // Fixed protocol headers (e.g. anthropic-version).
	MaxOutputTokens int
	Temperature     *float64 // Nil omits temperature from the request.

	Free        bool
	Recommended bool
}

func (d Descriptor) clone() Descriptor {
	d.Headers = maps.Clone(d.Headers)
	if d.Temperature != nil {
		t := *d.Temperature
		d.Temperature = &t
	}
	return d
}
