package modeladapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// RawResponse is an HTTP response read into memory. Any status code is a valid
// RawResponse; classifying failures is left to the caller.
type RawResponse struct {
	StatusCode int
	Status     string // Status text without the code (e.g. "Not Found").
	Header     http.Header
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r RawResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// TransportError is returned when no HTTP response was received (DNS failure,
// refused connection, timeout, truncated body).
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %v", e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// Dispatcher sends a built request and returns the raw response.
type Dispatcher interface {
	Send(ctx context.Context, req Request) (RawResponse, error)
}

// HTTPDispatcher sends requests with a net/http client.
type HTTPDispatcher struct {
	Client *http.Client // HTTP client; falls back to http.DefaultClient.
}

var _ Dispatcher = (*HTTPDispatcher)(nil)

// NewHTTPDispatcher creates an HTTPDispatcher.
// A nil client falls back to http.DefaultClient at call time.
func NewHTTPDispatcher(client *http.Client) *HTTPDispatcher {
	return &HTTPDispatcher{Client: client}
}

func (d *HTTPDispatcher) httpClient() *http.Client {
	if d.Client != nil {
		return d.Client
	}

	return http.DefaultClient
}

// Send performs the request. Only failures that prevent a response from being
// read are returned as errors, always as *TransportError.
func (d *HTTPDispatcher) Send(ctx context.Context, req Request) (RawResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return RawResponse{}, fmt.Errorf("build request: %w", err)
	}

	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := d.httpClient().Do(httpReq) //nolint:gosec // URL comes from the provider catalog, not user input.
	if err != nil {
		return RawResponse{}, &TransportError{Cause: redactURL(err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return RawResponse{}, &TransportError{Cause: fmt.Errorf("read body: %w", err)}
	}

	return RawResponse{
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// redactURL drops the query string from a *url.Error so credentials carried
// as query parameters never reach error messages or logs.
func redactURL(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}

	u, perr := url.Parse(ue.URL)
	if perr != nil {
		return &url.Error{Op: ue.Op, URL: "", Err: ue.Err}
	}
	u.RawQuery = ""

	return &url.Error{Op: ue.Op, URL: u.String(), Err: ue.Err}
}
