package todoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Request describes one outbound call before it reaches the transport.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Transport performs a single HTTP attempt. Implementations must return
// exactly one Outcome per call and report every non-HTTP failure
// (dial errors, timeouts, cancellation, body read errors) through Outcome.Err.
type Transport interface {
	Do(ctx context.Context, req *Request) Outcome
}

// HTTPTransport is the Transport backed by net/http.
type HTTPTransport struct {
	client *http.Client
	logger *log.Logger
}

// NewHTTPTransport creates a transport around client. logger may be nil.
func NewHTTPTransport(client *http.Client, logger *log.Logger) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client, logger: logger}
}

// Do sends the request and reads the whole response body.
func (t *HTTPTransport) Do(ctx context.Context, r *Request) Outcome {
	start := time.Now()

	var body io.Reader
	if len(r.Body) > 0 {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return Outcome{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		t.logf("%s %s failed after %v: %v", r.Method, req.URL.Path, time.Since(start), err)
		return Outcome{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.logf("%s %s %d body read failed: %v", r.Method, req.URL.Path, resp.StatusCode, err)
		return Outcome{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	t.logf("%s %s %d %v", r.Method, req.URL.Path, resp.StatusCode, time.Since(start))
	return Outcome{StatusCode: resp.StatusCode, Body: data}
}

func (t *HTTPTransport) logf(format string, args ...interface{}) {
	if t.logger != nil {
		t.logger.Printf(format, args...)
	}
}

// newRequest creates a request descriptor with common headers.
func (c *Client) newRequest(method, path string) *Request {
	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set("Accept", "application/json")

	return &Request{
		Method: method,
		URL:    c.baseURL + path,
		Header: header,
	}
}

// newJSONRequest creates a request descriptor with a JSON body.
func (c *Client) newJSONRequest(method, path string, body interface{}) (*Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req := c.newRequest(method, path)
	req.Body = data
	return req, nil
}

// taskPath constructs the item path for a task id. The id is opaque and only escaped.
func taskPath(id string) string {
	return "/todos/" + url.PathEscape(id)
}
