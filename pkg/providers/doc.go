// Package providers groups the LLM provider catalog and adapters.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/minutes/pkg/providers/provider]: descriptors, the ordered Catalog, and the Adapter capability (Build, Extract)
//   - [github.com/germanamz/minutes/pkg/providers/huggingface]: completion-inputs envelope
//   - [github.com/germanamz/minutes/pkg/providers/openai]: chat-messages envelope (OpenAI, Groq, Perplexity)
//   - [github.com/germanamz/minutes/pkg/providers/anthropic]: anthropic-messages envelope
//   - [github.com/germanamz/minutes/pkg/providers/gemini]: gemini-contents envelope
//
// Adapters only translate. Sending requests is the job of a
// modeladapter.Dispatcher, and classifying failures belongs to apierror.
package providers
