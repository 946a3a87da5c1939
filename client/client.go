package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to a vector evaluation service over HTTP and WebSocket
type Client struct {
	baseURL    string
	httpClient *http.Client
	kind       string
	ctx        context.Context
	cancelFunc context.CancelFunc
}

// ClientBuilder provides a builder pattern for constructing clients
type ClientBuilder struct {
	baseURL    string
	kind       string
	httpClient *http.Client
	timeout    time.Duration
}

// NewClientBuilder creates a new client builder
func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		timeout: 30 * time.Second,
	}
}

// WithBaseURL sets the base URL of the service, e.g. http://localhost:8080
func (b *ClientBuilder) WithBaseURL(baseURL string) *ClientBuilder {
	b.baseURL = baseURL
	return b
}

// WithKind sets the component kind requested when connecting.
// An empty kind lets the server pick its default.
func (b *ClientBuilder) WithKind(kind string) *ClientBuilder {
	b.kind = kind
	return b
}

// WithTimeout sets the HTTP client timeout
func (b *ClientBuilder) WithTimeout(timeout time.Duration) *ClientBuilder {
	b.timeout = timeout
	return b
}

// WithHTTPClient sets a custom HTTP client
func (b *ClientBuilder) WithHTTPClient(client *http.Client) *ClientBuilder {
	b.httpClient = client
	return b
}

// Build creates the configured client
func (b *ClientBuilder) Build() (*Client, error) {
	if b.baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	parsedURL, err := url.Parse(b.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL scheme: %q", parsedURL.Scheme)
	}

	ctx, cancel := context.WithCancel(context.Background())

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: b.timeout,
		}
	}

	return &Client{
		baseURL:    parsedURL.String(),
		httpClient: httpClient,
		kind:       b.kind,
		ctx:        ctx,
		cancelFunc: cancel,
	}, nil
}

// Close cancels in-flight requests
func (c *Client) Close() error {
	c.cancelFunc()
	return nil
}

// Ping tests connectivity to the service
func (c *Client) Ping() error {
	url := fmt.Sprintf("%s/v1/ping", c.baseURL)

	resp, err := c.doRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error pinging service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ping failed with status: %d", resp.StatusCode)
	}

	return nil
}

// GetBaseURL returns the base URL
func (c *Client) GetBaseURL() string {
	return c.baseURL
}

// GetKind returns the component kind requested on connect
func (c *Client) GetKind() string {
	return c.kind
}

// GetHTTPClient returns the underlying HTTP client
func (c *Client) GetHTTPClient() *http.Client {
	return c.httpClient
}

// GetContext returns the client context
func (c *Client) GetContext() context.Context {
	return c.ctx
}

// doRequest performs a basic HTTP request and returns the response
func (c *Client) doRequest(method, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(c.ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	return c.httpClient.Do(req)
}
