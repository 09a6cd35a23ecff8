// Package usage tracks token usage reported by (or estimated for) provider calls.
package usage

import "sync"

// TokenCount holds input and output token counts for a single LLM call.
type TokenCount struct {
	InputTokens  int
	OutputTokens int
	Estimated    bool // Counts were estimated locally, not reported by the provider.
}

// Total returns the sum of input and output tokens.
func (tc TokenCount) Total() int {
	return tc.InputTokens + tc.OutputTokens
}

// IsZero reports whether no tokens were counted.
func (tc TokenCount) IsZero() bool {
	return tc.InputTokens == 0 && tc.OutputTokens == 0
}

// Tracker accumulates token usage across calls. It is safe for concurrent
// use.
type Tracker struct {
	mu    sync.Mutex
	total TokenCount
}

// Add records the token count of one call.
func (t *Tracker) Add(tc TokenCount) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total.InputTokens += tc.InputTokens
	t.total.OutputTokens += tc.OutputTokens
	t.total.Estimated = t.total.Estimated || tc.Estimated
}

// Total returns the aggregate token count. It is flagged Estimated when any
// recorded call was estimated.
func (t *Tracker) Total() TokenCount {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.total
}
