package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/germanamz/minutes/pkg/engine"
	"github.com/germanamz/minutes/pkg/providers/provider"
)

func TestProviderOptions_CatalogOrder(t *testing.T) {
	descs := provider.Builtin()
	opts := providerOptions(descs)

	assert.Len(t, opts, len(descs))
	for i, d := range descs {
		assert.Equal(t, d.ID, opts[i].Value)
	}
}

func TestProviderLabel(t *testing.T) {
	d := provider.Descriptor{DisplayName: "Llama 3.1 70B", VendorName: "Hugging Face", Description: "Free powerful model", Recommended: true}
	assert.Equal(t, "Llama 3.1 70B (Hugging Face) - Free powerful model [recommended]", providerLabel(d))

	d.Recommended = false
	assert.Equal(t, "Llama 3.1 70B (Hugging Face) - Free powerful model", providerLabel(d))
}

func TestNotBlank(t *testing.T) {
	check := notBlank(engine.MsgMissingNotes)

	assert.EqualError(t, check("  \n"), engine.MsgMissingNotes)
	assert.NoError(t, check("notes"))
}
