package modeladapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Auth holds authentication settings for an LLM provider API.
type Auth struct {
	Key    string // Credential value.
	Header string // Header name (default: "Authorization").
	Scheme string // Scheme prefix (default: "Bearer" when Header is "Authorization").
	Query  string // Query parameter name. When set the key is sent on the URL and no header is written.
}

// Request is a fully built provider request. It carries no context and no
// open resources, so it can be inspected freely before it is dispatched.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// ModelAdapter holds the request settings shared by provider adapters. Embed it
// in concrete adapter structs to get auth, fixed headers and JSON request
// construction.
type ModelAdapter struct {
	Name        string            // Pinned model identifier (e.g. "gpt-4o"). Empty for URL-addressed models.
	Temperature *float64          // Sampling temperature; nil omits it from the request.
	MaxTokens   int               // Maximum tokens in the response.
	Auth        Auth              // Authentication settings.
	Endpoint    string            // Full endpoint URL.
	Headers     map[string]string // Extra headers applied to every request.
}

// New creates a ModelAdapter for the given endpoint and auth.
func New(endpoint string, auth Auth) ModelAdapter {
	return ModelAdapter{
		Auth:     auth,
		Endpoint: endpoint,
	}
}

// WithKey returns a copy of the adapter authenticated with key. Adapters are
// built once per process while credentials arrive per request.
func (a ModelAdapter) WithKey(key string) ModelAdapter {
	a.Auth.Key = key
	return a
}

// NewRequest marshals payload as JSON and builds a POST request to the
// endpoint with auth and custom headers applied.
func (a *ModelAdapter) NewRequest(payload any) (Request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Request{}, fmt.Errorf("marshal payload: %w", err)
	}

	u, err := url.Parse(a.Endpoint)
	if err != nil {
		return Request{}, fmt.Errorf("parse endpoint: %w", err)
	}

	h := make(http.Header)
	h.Set("Content-Type", "application/json")

	// Apply auth.
	if a.Auth.Key != "" {
		if a.Auth.Query != "" {
			q := u.Query()
			q.Set(a.Auth.Query, a.Auth.Key)
			u.RawQuery = q.Encode()
		} else {
			a.applyHeaderAuth(h)
		}
	}

	// Apply custom headers.
	for k, v := range a.Headers {
		h.Set(k, v)
	}

	return Request{
		Method: http.MethodPost,
		URL:    u.String(),
		Header: h,
		Body:   body,
	}, nil
}

func (a *ModelAdapter) applyHeaderAuth(h http.Header) {
	header := a.Auth.Header
	if header == "" {
		header = "Authorization"
	}

	value := a.Auth.Key
	if header == "Authorization" {
		scheme := a.Auth.Scheme
		if scheme == "" {
			scheme = "Bearer"
		}

		value = scheme + " " + value
	} else if a.Auth.Scheme != "" {
		value = a.Auth.Scheme + " " + value
	}

	h.Set(header, value)
}
