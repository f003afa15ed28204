package github

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/nao1215/wfkit/internal/config"
)

// DefaultBaseURL is the GitHub repository search endpoint.
const DefaultBaseURL = "https://api.github.com/search/repositories"

// acceptHeader enables the topics preview so search results include the
// "topics" field. GitHub has long since promoted the feature, but the
// header remains valid and keeps us working against GitHub Enterprise
// versions where it is still required.
const acceptHeader = "application/vnd.github.mercy-preview+json"

// Client performs GitHub search API requests.
//
// Design decision: We use a struct with the http.Client rather than
// passing the client on each call because:
//  1. Client configuration (timeouts, token) should be consistent
//  2. Connection pooling works better with a shared client
//  3. Easier to test with a local httptest server via WithBaseURL
type Client struct {
	// client is the underlying HTTP client.
	client *http.Client

	// baseURL is the search endpoint. Overridable for tests.
	baseURL string

	// userAgent is the User-Agent header sent with every request.
	// GitHub rejects requests without one.
	userAgent string

	// token is an optional API token sent as a bearer Authorization
	// header. Raises the search rate limit from 10 to 30 requests/minute.
	token string

	// perPage is the fixed page size. The page-count formula assumes it.
	perPage int

	// logger receives per-request progress output.
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the search endpoint. Used by tests to point the
// client at a local httptest server.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithToken sets the API token sent as a bearer Authorization header.
// An empty token disables the header.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
// WithTimeout applied after this option mutates the replacement client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithLogger sets the logger for progress output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a search client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		client:    &http.Client{Timeout: config.DefaultTimeout},
		baseURL:   DefaultBaseURL,
		userAgent: config.DefaultUserAgent,
		perPage:   config.PerPage,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}
