package provider

// Shared generation settings for the built-in providers.
const (
	DefaultMaxOutputTokens = 1500
	DefaultTemperature     = 0.3
	AnthropicVersion       = "2023-06-01"
)

func temperature(v float64) *float64 { return &v }

// Builtin returns the built-in descriptors in display order.
func Builtin() []Descriptor {
	return []Descriptor{
		{
			ID:                    "huggingface",
			DisplayName:           "Llama 3.1 70B",
			VendorName:            "Hugging Face",
			Description:           "Free powerful model",
			CredentialLabel:       "Hugging Face API Key",
			CredentialPlaceholder: "hf_...",
			Endpoint:              "https://api-inference.huggingface.co/models/meta-llama/Meta-Llama-3.1-70B-Instruct",
			Auth:                  AuthBearerHeader,
			Envelope:              EnvelopeCompletionInputs,
			MaxOutputTokens:       DefaultMaxOutputTokens,
			Temperature:           temperature(DefaultTemperature),
			Free:                  true,
			Recommended:           true,
		},
		{
			ID:                    "groq",
			DisplayName:           "Llama 3.1 8B",
			VendorName:            "Groq",
			Description:           "Free ultra-fast inference",
			CredentialLabel:       "Groq API Key",
			CredentialPlaceholder: "gsk_...",
			Endpoint:              "https://api.groq.com/openai/v1/chat/completions",
			Model:                 "llama-3.1-8b-instant",
			Auth:                  AuthBearerHeader,
			Envelope:              EnvelopeChatMessages,
			MaxOutputTokens:       DefaultMaxOutputTokens,
			Temperature:           temperature(DefaultTemperature),
			Free:                  true,
		},
		{
			ID:                    "perplexity",
			DisplayName:           "Perplexity (Free)",
			VendorName:            "Perplexity AI",
			Description:           "Fast, free, and accurate summaries",
			CredentialLabel:       "Perplexity API Key",
			CredentialPlaceholder: "pplx-...",
			Endpoint:              "https://api.perplexity.ai/chat/completions",
			Model:                 "pplx-70b-online",
			Auth:                  AuthBearerHeader,
			Envelope:              EnvelopeChatMessages,
			MaxOutputTokens:       DefaultMaxOutputTokens,
			Temperature:           temperature(DefaultTemperature),
			Free:                  true,
		},
		{
			ID:                    "claude",
			DisplayName:           "Claude 3.5 Sonnet",
			VendorName:            "Anthropic",
			Description:           "Advanced reasoning and analysis",
			CredentialLabel:       "Anthropic API Key",
			CredentialPlaceholder: "sk-ant-api03-...",
			Endpoint:              "https://api.anthropic.com/v1/messages",
			Model:                 "claude-3-5-sonnet-20241022",
			Auth:                  AuthBearerHeader,
			Envelope:              EnvelopeAnthropicMessages,
			Headers:               map[string]string{"anthropic-version": AnthropicVersion},
			MaxOutputTokens:       DefaultMaxOutputTokens,
		},
		{
			ID:                    "gpt4",
			DisplayName:           "GPT-4",
			VendorName:            "OpenAI",
			Description:           "Versatile and creative",
			CredentialLabel:       "OpenAI API Key",
			CredentialPlaceholder: "sk-...",
			Endpoint:              "https://api.openai.com/v1/chat/completions",
			Model:                 "gpt-4",
			Auth:                  AuthBearerHeader,
			Envelope:              EnvelopeChatMessages,
			MaxOutputTokens:       DefaultMaxOutputTokens,
		},
		{
			ID:                    "gpt4o",
			DisplayName:           "GPT-4o",
			VendorName:            "OpenAI",
			Description:           "Fast and multimodal",
			CredentialLabel:       "OpenAI API Key",
			CredentialPlaceholder: "sk-...",
			Endpoint:              "https://api.openai.com/v1/chat/completions",
			Model:                 "gpt-4o",
			Auth:                  AuthBearerHeader,
			Envelope:              EnvelopeChatMessages,
			MaxOutputTokens:       DefaultMaxOutputTokens,
		},
		{
			ID:                    "gemini",
			DisplayName:           "Gemini Pro",
			VendorName:            "Google",
			Description:           "Fast and efficient",
			CredentialLabel:       "Google API Key",
			CredentialPlaceholder: "AIza...",
			Endpoint:              "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent",
			Auth:                  AuthQueryParam,
			Envelope:              EnvelopeGeminiContents,
		},
	}
}

// BuiltinCatalog returns a catalog of the built-in descriptors.
func BuiltinCatalog() *Catalog {
	c, err := NewCatalog(Builtin()...)
	if err != nil {
		panic(err) // built-in table is static
	}
	return c
}
