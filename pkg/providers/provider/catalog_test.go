package provider_test

import (
	"testing"

	"github.com/germanamz/minutes/pkg/providers/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalog_Order(t *testing.T) {
	c := provider.BuiltinCatalog()

	var ids []string
	for _, d := range c.All() {
		ids = append(ids, d.ID)
	}

	assert.Equal(t, []string{"huggingface", "groq", "perplexity", "claude", "gpt4", "gpt4o", "gemini"}, ids)
}

func TestBuiltinCatalog_Default(t *testing.T) {
	c := provider.BuiltinCatalog()
	assert.Equal(t, "huggingface", c.DefaultID())

	d, err := c.Describe(c.DefaultID())
	require.NoError(t, err)
	assert.True(t, d.Recommended)
	assert.True(t, d.Free)
}

func TestBuiltinCatalog_Envelopes(t *testing.T) {
	c := provider.BuiltinCatalog()

	want := map[string]provider.Envelope{
		"huggingface": provider.EnvelopeCompletionInputs,
		"groq":        provider.EnvelopeChatMessages,
		"perplexity":  provider.EnvelopeChatMessages,
		"claude":      provider.EnvelopeAnthropicMessages,
		"gpt4":        provider.EnvelopeChatMessages,
		"gpt4o":       provider.EnvelopeChatMessages,
		"gemini":      provider.EnvelopeGeminiContents,
	}

	for id, env := range want {
		d, err := c.Describe(id)
		require.NoError(t, err, id)
		assert.Equal(t, env, d.Envelope, id)
	}

	gemini, _ := c.Describe("gemini")
	assert.Equal(t, provider.AuthQueryParam, gemini.Auth)
}

func TestDescribe_Unknown(t *testing.T) {
	_, err := provider.BuiltinCatalog().Describe("llama-local")

	var upe *provider.UnknownProviderError
	require.ErrorAs(t, err, &upe)
	assert.Equal(t, "llama-local", upe.ID)
	assert.EqualError(t, err, `provider: unknown provider "llama-local"`)
}

func TestDescribe_ReturnsCopies(t *testing.T) {
	c := provider.BuiltinCatalog()

	d, err := c.Describe("claude")
	require.NoError(t, err)
	d.Headers["anthropic-version"] = "tampered"

	again, err := c.Describe("claude")
	require.NoError(t, err)
	assert.Equal(t, provider.AnthropicVersion, again.Headers["anthropic-version"])

	g, _ := c.Describe("groq")
	*g.Temperature = 2
	g2, _ := c.Describe("groq")
	assert.InDelta(t, provider.DefaultTemperature, *g2.Temperature, 1e-9)
}

func TestNewCatalog_Invariants(t *testing.T) {
	tests := []struct {
		name  string
		descs []provider.Descriptor
		err   string
	}{
		{
			name:  "empty id",
			descs: []provider.Descriptor{{Recommended: true}},
			err:   "descriptor id is required",
		},
		{
			name:  "duplicate id",
			descs: []provider.Descriptor{{ID: "a", Recommended: true}, {ID: "a"}},
			err:   `duplicate id "a"`,
		},
		{
			name:  "two recommended",
			descs: []provider.Descriptor{{ID: "a", Recommended: true}, {ID: "b", Recommended: true}},
			err:   "both recommended",
		},
		{
			name:  "no recommended",
			descs: []provider.Descriptor{{ID: "a"}},
			err:   "no recommended provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.NewCatalog(tt.descs...)
			assert.ErrorContains(t, err, tt.err)
		})
	}
}

func TestWithOverrides(t *testing.T) {
	c := provider.BuiltinCatalog()

	o, err := c.WithOverrides(map[string]provider.Override{
		"groq": {Endpoint: "http://localhost:9999/v1/chat/completions", Model: "llama-3.3-70b-versatile"},
	})
	require.NoError(t, err)

	d, _ := o.Describe("groq")
	assert.Equal(t, "http://localhost:9999/v1/chat/completions", d.Endpoint)
	assert.Equal(t, "llama-3.3-70b-versatile", d.Model)

	orig, _ := c.Describe("groq")
	assert.Equal(t, "https://api.groq.com/openai/v1/chat/completions", orig.Endpoint)
	assert.Equal(t, c.DefaultID(), o.DefaultID())
}

func TestWithOverrides_Unknown(t *testing.T) {
	_, err := provider.BuiltinCatalog().WithOverrides(map[string]provider.Override{"nope": {}})

	var upe *provider.UnknownProviderError
	assert.ErrorAs(t, err, &upe)
}

func TestBase(t *testing.T) {
	c := provider.BuiltinCatalog()

	gemini, _ := c.Describe("gemini")
	a := provider.Base(gemini)
	assert.Equal(t, "key", a.Auth.Query)
	assert.Equal(t, gemini.Endpoint, a.Endpoint)

	claude, _ := c.Describe("claude")
	a = provider.Base(claude)
	assert.Empty(t, a.Auth.Query)
	assert.Equal(t, "claude-3-5-sonnet-20241022", a.Name)
	assert.Equal(t, 1500, a.MaxTokens)
	assert.Nil(t, a.Temperature)
	assert.Equal(t, provider.AnthropicVersion, a.Headers["anthropic-version"])
}
