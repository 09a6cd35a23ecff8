// Package modeladapter holds the transport layer shared by provider adapters.
//
// It contains:
//   - [ModelAdapter], an embeddable base with auth (header or query parameter), fixed headers and JSON request construction
//   - [Dispatcher] and its net/http implementation [HTTPDispatcher], which return a [RawResponse] for any status code
//   - rate limit header parsing used when classifying 429 responses
//   - [github.com/germanamz/minutes/pkg/modeladapter/usage], a thread-safe token usage tracker
//
// This package contains no provider-specific code. Concrete adapters live in
// the providers packages and import modeladapter.
package modeladapter
