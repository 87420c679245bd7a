package todoapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Client is an HTTP client for the TODO service API.
type Client struct {
	baseURL   string
	transport Transport
}

// NewClient creates a new TODO API client.
//
// Optional options:
//   - WithBaseURL: sets the service base URL (default: DefaultBaseURL)
//   - WithTimeout: sets the HTTP client timeout (default: 30s)
//   - WithHTTPClient: supplies the *http.Client
//   - WithTransport: replaces the transport
//   - WithLogger: logs each request
//
// Example:
//
//	client, err := todoapi.NewClient(todoapi.WithTimeout(5 * time.Second))
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	u, err := url.Parse(cfg.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: must be an absolute http or https URL", cfg.baseURL)
	}

	transport := cfg.transport
	if transport == nil {
		httpClient := cfg.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: cfg.timeout}
		}
		transport = NewHTTPTransport(httpClient, cfg.logger)
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.baseURL, "/"),
		transport: transport,
	}, nil
}

// BaseURL returns the service base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}
