package todoapi

import (
	"log"
	"net/http"
	"time"
)

// DefaultBaseURL is the TODO service every client talks to unless overridden.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// DefaultTimeout is the HTTP client timeout used when no client is supplied.
const DefaultTimeout = 30 * time.Second

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// clientConfig holds the configuration for a Client.
type clientConfig struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	transport  Transport
	logger     *log.Logger
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
}

// WithBaseURL points the client at another host, such as a local service double.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout. Ignored when WithHTTPClient or
// WithTransport is also given.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets the *http.Client used by the default transport.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTransport replaces the HTTP transport entirely.
func WithTransport(t Transport) ClientOption {
	return func(c *clientConfig) {
		c.transport = t
	}
}

// WithLogger enables request logging on the default transport.
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
