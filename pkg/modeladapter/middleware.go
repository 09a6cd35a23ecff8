package modeladapter

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/germanamz/minutes/pkg/requestctx"
)

// DispatcherFunc adapts a plain function to the Dispatcher interface.
type DispatcherFunc func(ctx context.Context, req Request) (RawResponse, error)

// Send calls the underlying function.
func (f DispatcherFunc) Send(ctx context.Context, req Request) (RawResponse, error) {
	return f(ctx, req)
}

// Middleware wraps a Dispatcher, returning a new Dispatcher with added behaviour.
type Middleware func(next Dispatcher) Dispatcher

// Chain applies mws to d. The first middleware is the outermost.
func Chain(d Dispatcher, mws ...Middleware) Dispatcher {
	for i := len(mws) - 1; i >= 0; i-- {
		d = mws[i](d)
	}
	return d
}

// --- Timeout middleware ---

// Timeout returns a Middleware that bounds each Send with a deadline. A
// non-positive d leaves the context untouched.
func Timeout(d time.Duration) Middleware {
	return func(next Dispatcher) Dispatcher {
		if d <= 0 {
			return next
		}

		return DispatcherFunc(func(ctx context.Context, req Request) (RawResponse, error) {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()

			return next.Send(ctx, req)
		})
	}
}

// --- Recovery middleware ---

// Recovery returns a Middleware that catches panics and converts them to errors.
func Recovery() Middleware {
	return func(next Dispatcher) Dispatcher {
		return DispatcherFunc(func(ctx context.Context, req Request) (resp RawResponse, err error) {
			defer func() {
				if r := recover(); r != nil {
					resp = RawResponse{}
					err = fmt.Errorf("dispatcher panicked: %v", r)
				}
			}()

			return next.Send(ctx, req)
		})
	}
}

// --- Logger middleware ---

// Logger returns a Middleware that logs each request's target, status, and
// duration under the request id carried by the context. The query string is
// never logged.
func Logger(log *slog.Logger) Middleware {
	return func(next Dispatcher) Dispatcher {
		return DispatcherFunc(func(ctx context.Context, req Request) (RawResponse, error) {
			target := redactedTarget(req.URL)
			log := log.With("request_id", requestctx.RequestIDFromContext(ctx))
			log.DebugContext(ctx, "request sent", "method", req.Method, "url", target, "bytes", len(req.Body))

			start := time.Now()

			resp, err := next.Send(ctx, req)

			duration := time.Since(start)

			if err != nil {
				log.ErrorContext(ctx, "request failed",
					"url", target,
					"duration", duration,
					"error", err,
				)
			} else {
				log.DebugContext(ctx, "response received",
					"url", target,
					"status", resp.StatusCode,
					"bytes", len(resp.Body),
					"duration", duration,
				)
			}

			return resp, err
		})
	}
}

func redactedTarget(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	u.RawQuery = ""
	u.User = nil

	return u.String()
}
