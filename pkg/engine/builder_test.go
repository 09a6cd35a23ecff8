package engine

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germanamz/minutes/pkg/modeladapter"
	"github.com/germanamz/minutes/pkg/providers/provider"
	"github.com/germanamz/minutes/pkg/summary"
)

var fixedNow = time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newTestBuilder() *Builder {
	return NewBuilder(provider.BuiltinCatalog(), clock)
}

func TestBuilder_GeminiRequest(t *testing.T) {
	req, err := newTestBuilder().Build(RequestContext{
		Notes:      "standup notes",
		ProviderID: "gemini",
		Credential: "AIza-secret",
	})
	require.NoError(t, err)

	u, err := url.Parse(req.URL)
	require.NoError(t, err)
	assert.Equal(t, "AIza-secret", u.Query().Get("key"))
	assert.Equal(t, "/v1beta/models/gemini-pro:generateContent", u.Path)
	assert.Empty(t, req.Header.Get("Authorization"))
	assert.Equal(t, http.MethodPost, req.Method)

	want, err := json.Marshal(map[string]any{
		"contents": []any{
			map[string]any{"parts": []any{map[string]any{"text": summary.Prompt("standup notes", fixedNow)}}},
		},
	})
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(req.Body))
}

func TestBuilder_EveryProviderBuilds(t *testing.T) {
	b := newTestBuilder()

	for _, d := range provider.Builtin() {
		t.Run(d.ID, func(t *testing.T) {
			req, err := b.Build(RequestContext{Notes: "n", ProviderID: d.ID, Credential: "k"})
			require.NoError(t, err)

			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			assert.True(t, json.Valid(req.Body))
		})
	}
}

func TestBuilder_SamePromptForEveryProvider(t *testing.T) {
	b := newTestBuilder()
	prompt := summary.Prompt("- Sarah: Q4 on track", fixedNow)

	for _, d := range provider.Builtin() {
		req, err := b.Build(RequestContext{Notes: "- Sarah: Q4 on track", ProviderID: d.ID, Credential: "k"})
		require.NoError(t, err)

		var body any
		require.NoError(t, json.Unmarshal(req.Body, &body))
		assert.True(t, containsString(body, prompt), "provider %s does not carry the shared prompt", d.ID)
	}
}

func containsString(v any, s string) bool {
	switch t := v.(type) {
	case string:
		return t == s
	case []any:
		for _, e := range t {
			if containsString(e, s) {
				return true
			}
		}
	case map[string]any:
		for _, e := range t {
			if containsString(e, s) {
				return true
			}
		}
	}
	return false
}

func TestBuilder_UnknownProvider(t *testing.T) {
	_, err := newTestBuilder().Build(RequestContext{Notes: "n", ProviderID: "llama", Credential: "k"})

	var ue *provider.UnknownProviderError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "llama", ue.ID)
}

type stubAdapter struct{ provider.Descriptor }

func (s stubAdapter) Build(prompt, credential string) (modeladapter.Request, error) {
	return modeladapter.Request{Method: http.MethodPost, URL: s.Endpoint, Body: []byte(prompt)}, nil
}

func (s stubAdapter) Extract(body []byte) (provider.Completion, error) {
	return provider.Completion{Text: string(body)}, nil
}

func TestRegisterAdapter_CustomEnvelope(t *testing.T) {
	const envelope provider.Envelope = "plain-text"
	RegisterAdapter(envelope, func(d provider.Descriptor) provider.Adapter { return stubAdapter{d} })

	catalog, err := provider.NewCatalog(provider.Descriptor{
		ID:          "local",
		Endpoint:    "http://localhost:8080/generate",
		Envelope:    envelope,
		Recommended: true,
	})
	require.NoError(t, err)

	req, err := NewBuilder(catalog, clock).Build(RequestContext{Notes: "n", ProviderID: "local", Credential: "k"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/generate", req.URL)
	assert.Equal(t, summary.Prompt("n", fixedNow), string(req.Body))
}

func TestBuilder_MissingEnvelope(t *testing.T) {
	catalog, err := provider.NewCatalog(provider.Descriptor{
		ID:          "odd",
		Endpoint:    "http://localhost",
		Envelope:    "unregistered",
		Recommended: true,
	})
	require.NoError(t, err)

	_, err = NewBuilder(catalog, clock).Build(RequestContext{Notes: "n", ProviderID: "odd", Credential: "k"})
	assert.ErrorContains(t, err, `no adapter for envelope "unregistered"`)
}
