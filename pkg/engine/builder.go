package engine

import (
	"fmt"
	"time"

	"github.com/germanamz/minutes/pkg/modeladapter"
	"github.com/germanamz/minutes/pkg/providers/provider"
	"github.com/germanamz/minutes/pkg/summary"
)

// Builder turns a RequestContext into the HTTP request for its provider. It
// holds no per-request state and is safe for concurrent use.
type Builder struct {
	catalog *provider.Catalog
	now     func() time.Time
}

// NewBuilder creates a Builder over catalog. A nil now uses time.Now.
func NewBuilder(catalog *provider.Catalog, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}

	return &Builder{catalog: catalog, now: now}
}

// Adapter returns the descriptor and adapter for the provider id.
func (b *Builder) Adapter(id string) (provider.Descriptor, provider.Adapter, error) {
	d, err := b.catalog.Describe(id)
	if err != nil {
		return provider.Descriptor{}, nil, err
	}

	a, err := adapterFor(d)
	if err != nil {
		return provider.Descriptor{}, nil, err
	}

	return d, a, nil
}

// Build assembles the request for rc using today's prompt. Unknown provider
// ids fail with *provider.UnknownProviderError.
func (b *Builder) Build(rc RequestContext) (modeladapter.Request, error) {
	_, a, err := b.Adapter(rc.ProviderID)
	if err != nil {
		return modeladapter.Request{}, err
	}

	return buildWith(a, summary.Prompt(rc.Notes, b.now()), rc.Credential)
}

func buildWith(a provider.Adapter, prompt, credential string) (modeladapter.Request, error) {
	req, err := a.Build(prompt, credential)
	if err != nil {
		return modeladapter.Request{}, fmt.Errorf("engine: build request: %w", err)
	}

	return req, nil
}
