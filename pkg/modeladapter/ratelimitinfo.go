package modeladapter

import (
	"net/http"
	"strconv"
	"time"
)

// RateLimitInfo holds rate limit state parsed from provider response headers.
type RateLimitInfo struct {
	RemainingRequests int
	RemainingTokens   int
	RequestsReset     time.Time
	TokensReset       time.Time
}

// ResetAt returns when an exhausted limit resets: the later reset of the
// buckets whose remaining count is zero. It returns the zero time when no
// bucket is exhausted or no reset time is known.
func (r *RateLimitInfo) ResetAt() time.Time {
	if r == nil {
		return time.Time{}
	}

	var at time.Time
	if r.RemainingRequests == 0 && r.RequestsReset.After(at) {
		at = r.RequestsReset
	}
	if r.RemainingTokens == 0 && r.TokensReset.After(at) {
		at = r.TokensReset
	}
	return at
}

// RateLimitHeaderParser extracts rate limit info from HTTP response headers.
// It receives the current time so callers can control the clock in tests.
type RateLimitHeaderParser func(h http.Header, now time.Time) *RateLimitInfo

// ParseRetryAfter parses the Retry-After header value as either seconds (integer)
// or an HTTP-date (RFC 7231). Returns zero if unparseable or if the date is in the past.
func ParseRetryAfter(val string, now time.Time) time.Duration {
	if val == "" {
		return 0
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(val); err == nil {
		d := t.Sub(now)
		if d > 0 {
			return d
		}
		return 0
	}
	return 0
}

// ParseRateLimitHeaders tries every known header convention and returns the
// first match, or nil when the response carries no rate limit headers.
func ParseRateLimitHeaders(h http.Header, now time.Time) *RateLimitInfo {
	for _, parse := range []RateLimitHeaderParser{ParseAnthropicRateLimitHeaders, ParseOpenAIRateLimitHeaders} {
		if info := parse(h, now); info != nil {
			return info
		}
	}
	return nil
}

// ParseAnthropicRateLimitHeaders parses Anthropic-specific rate limit headers.
// Headers: anthropic-ratelimit-{requests,tokens}-{remaining,reset}.
func ParseAnthropicRateLimitHeaders(h http.Header, now time.Time) *RateLimitInfo {
	return parseRateLimit(now,
		h.Get("anthropic-ratelimit-requests-remaining"),
		h.Get("anthropic-ratelimit-tokens-remaining"),
		h.Get("anthropic-ratelimit-requests-reset"),
		h.Get("anthropic-ratelimit-tokens-reset"),
	)
}

// ParseOpenAIRateLimitHeaders parses OpenAI-compatible rate limit headers.
// Groq and Perplexity follow the same convention.
// Headers: x-ratelimit-remaining-{requests,tokens}, x-ratelimit-reset-{requests,tokens}.
func ParseOpenAIRateLimitHeaders(h http.Header, now time.Time) *RateLimitInfo {
	return parseRateLimit(now,
		h.Get("x-ratelimit-remaining-requests"),
		h.Get("x-ratelimit-remaining-tokens"),
		h.Get("x-ratelimit-reset-requests"),
		h.Get("x-ratelimit-reset-tokens"),
	)
}

func parseRateLimit(now time.Time, reqRemaining, tokRemaining, reqReset, tokReset string) *RateLimitInfo {
	if reqRemaining == "" && tokRemaining == "" {
		return nil
	}

	info := &RateLimitInfo{}
	if v, err := strconv.Atoi(reqRemaining); err == nil {
		info.RemainingRequests = v
	}
	if v, err := strconv.Atoi(tokRemaining); err == nil {
		info.RemainingTokens = v
	}
	info.RequestsReset = parseResetTime(reqReset, now)
	info.TokensReset = parseResetTime(tokReset, now)

	return info
}

// parseResetTime tries RFC3339 first, then a Go duration string (e.g. "6s", "1m30s")
// relative to now.
func parseResetTime(val string, now time.Time) time.Time {
	if val == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t
	}
	if d, err := time.ParseDuration(val); err == nil {
		return now.Add(d)
	}
	return time.Time{}
}
