// Package apierror classifies failures of a summarization cycle into a small
// set of user-facing categories.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/germanamz/minutes/pkg/modeladapter"
	"github.com/germanamz/minutes/pkg/providers/provider"
)

// Kind is a user-facing error category.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindUnknownProvider   Kind = "unknown_provider"
	KindNetwork           Kind = "network"
	KindInvalidCredential Kind = "invalid_credential"
	KindRateLimited       Kind = "rate_limited"
	KindAccessDenied      Kind = "access_denied"
	KindUpstream          Kind = "upstream"
	KindMalformedResponse Kind = "malformed_response"
)

// Error is a classified failure.
type Error struct {
	Kind       Kind
	StatusCode int    // HTTP status for response-derived kinds, zero otherwise.
	Message    string // Detail: upstream message, validation reason, or cause text.
	RetryAfter time.Duration
	RateLimit  *modeladapter.RateLimitInfo
	Cause      error
}

func (e *Error) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: %d - %s", e.Kind, e.StatusCode, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// UserMessage returns the sentence shown to the user.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindValidation:
		return e.Message
	case KindInvalidCredential:
		return "Invalid API key. Please check your API key and try again."
	case KindRateLimited:
		if e.RetryAfter > 0 {
			return fmt.Sprintf("Rate limit exceeded. Please try again in %s.", e.RetryAfter.Round(time.Second))
		}
		if at := e.RateLimit.ResetAt(); !at.IsZero() {
			return "Rate limit exceeded. Please try again after " + at.Format("15:04:05 MST") + "."
		}
		return "Rate limit exceeded. Please try again later."
	case KindAccessDenied:
		return "Access denied. Please check your API key permissions."
	case KindUpstream:
		if e.StatusCode == 0 {
			return "Failed to process meeting notes: " + e.Message
		}
		return fmt.Sprintf("Failed to process meeting notes: API Error: %d - %s", e.StatusCode, e.Message)
	default:
		return "Failed to process meeting notes: " + e.Message
	}
}

// Is matches another *Error by Kind, so errors.Is(err, &Error{Kind: KindRateLimited}) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Validation returns a KindValidation error with a user-facing reason.
func Validation(reason string) *Error {
	return &Error{Kind: KindValidation, Message: reason}
}

// Classify maps a non-2xx response to a classified error. It returns nil for
// 2xx responses.
func Classify(resp modeladapter.RawResponse, now time.Time) *Error {
	if resp.OK() {
		return nil
	}

	e := &Error{
		StatusCode: resp.StatusCode,
		Message:    upstreamMessage(resp),
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		e.Kind = KindInvalidCredential
	case http.StatusTooManyRequests:
		e.Kind = KindRateLimited
		e.RetryAfter = modeladapter.ParseRetryAfter(resp.Header.Get("Retry-After"), now)
		e.RateLimit = modeladapter.ParseRateLimitHeaders(resp.Header, now)
	case http.StatusForbidden:
		e.Kind = KindAccessDenied
	default:
		e.Kind = KindUpstream
	}

	return e
}

// upstreamMessage reads error.message from a JSON body, falling back to the
// status text. Undecodable bodies are not an error.
func upstreamMessage(resp modeladapter.RawResponse) string {
	if gjson.ValidBytes(resp.Body) {
		if msg := gjson.GetBytes(resp.Body, "error.message"); msg.Type == gjson.String && msg.String() != "" {
			return msg.String()
		}
	}

	if resp.Status != "" {
		return resp.Status
	}
	return http.StatusText(resp.StatusCode)
}

// FromTransport wraps a failure to reach the provider.
func FromTransport(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error(), Cause: err}
}

// From classifies any error returned by the pipeline. Already classified
// errors are returned unchanged; errors it does not recognize are reported as
// network failures when they wrap a TransportError and as upstream failures
// otherwise.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}

	var te *modeladapter.TransportError
	if errors.As(err, &te) {
		return FromTransport(err)
	}

	var me *provider.MalformedResponseError
	if errors.As(err, &me) {
		return &Error{Kind: KindMalformedResponse, Message: me.Error(), Cause: err}
	}

	var ue *provider.UnknownProviderError
	if errors.As(err, &ue) {
		return &Error{Kind: KindUnknownProvider, Message: ue.Error(), Cause: err}
	}

	return &Error{Kind: KindUpstream, Message: strings.TrimSpace(err.Error()), Cause: err}
}
