// Package engine is the composition root of minutes. It assembles the
// provider catalog, request builder, dispatcher, and summary parser from
// configuration and exposes them through Engine and Session.
//
// A summarization cycle validates the request, builds the provider-specific
// HTTP request, dispatches it, classifies non-success responses, extracts the
// completion text, and parses it into a summary.Summary. Sessions track the
// lifecycle of these cycles (Idle, Dispatching, Succeeded, Failed) and
// publish every transition on an EventBus so frontends can follow progress
// without polling.
package engine
