package modeladapter

// perMessageOverhead is the estimated token overhead for each message (role,
// structure delimiters, etc.).
const perMessageOverhead = 4

// TokenEstimator estimates token counts for prompts and completions when a
// provider does not report usage. It uses a character-to-token heuristic
// (approximately 1 token per 4 characters for English text).
// The zero value is ready to use.
type TokenEstimator struct{}

// charsToTokens converts a character count to an estimated token count using the
// 1-token-per-4-characters heuristic.
func charsToTokens(chars int) int {
	return (chars + 3) / 4 // round up
}

// EstimatePrompt estimates the input tokens for a single-message prompt.
func (e *TokenEstimator) EstimatePrompt(prompt string) int {
	if prompt == "" {
		return 0
	}
	return charsToTokens(len(prompt)) + perMessageOverhead
}

// EstimateCompletion estimates the output tokens of a completion text.
func (e *TokenEstimator) EstimateCompletion(text string) int {
	return charsToTokens(len(text))
}
