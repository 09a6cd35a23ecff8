package engine

import (
	"fmt"
	"sync"

	"github.com/germanamz/minutes/pkg/providers/anthropic"
	"github.com/germanamz/minutes/pkg/providers/gemini"
	"github.com/germanamz/minutes/pkg/providers/huggingface"
	"github.com/germanamz/minutes/pkg/providers/openai"
	"github.com/germanamz/minutes/pkg/providers/provider"
)

var (
	factoryMu   sync.RWMutex
	factories   = map[provider.Envelope]provider.Factory{}
	defaultsReg sync.Once
)

func ensureDefaults() {
	defaultsReg.Do(func() {
		factories[provider.EnvelopeCompletionInputs] = newHuggingFace
		factories[provider.EnvelopeChatMessages] = newOpenAI
		factories[provider.EnvelopeAnthropicMessages] = newAnthropic
		factories[provider.EnvelopeGeminiContents] = newGemini
	})
}

// RegisterAdapter registers an adapter factory for the given envelope. It can
// be called before New to support an additional request family or to replace
// a built-in one.
func RegisterAdapter(envelope provider.Envelope, factory provider.Factory) {
	ensureDefaults()

	factoryMu.Lock()
	defer factoryMu.Unlock()

	factories[envelope] = factory
}

// getFactory returns the factory for the given envelope.
func getFactory(envelope provider.Envelope) (provider.Factory, bool) {
	ensureDefaults()

	factoryMu.RLock()
	defer factoryMu.RUnlock()

	f, ok := factories[envelope]
	return f, ok
}

// adapterFor builds the adapter serving d.
func adapterFor(d provider.Descriptor) (provider.Adapter, error) {
	f, ok := getFactory(d.Envelope)
	if !ok {
		return nil, fmt.Errorf("engine: provider %q: no adapter for envelope %q", d.ID, d.Envelope)
	}

	return f(d), nil
}

func newHuggingFace(d provider.Descriptor) provider.Adapter { return huggingface.New(d) }
func newOpenAI(d provider.Descriptor) provider.Adapter      { return openai.New(d) }
func newAnthropic(d provider.Descriptor) provider.Adapter   { return anthropic.New(d) }
func newGemini(d provider.Descriptor) provider.Adapter      { return gemini.New(d) }
