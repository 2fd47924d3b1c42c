package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"meteoroloji/logger"
)

const (
	// DefaultBaseURL is the root of the MGM web service.
	DefaultBaseURL = "https://servis.mgm.gov.tr/web"
	// DefaultOrigin is sent as the Origin header. MGM rejects requests without it.
	DefaultOrigin = "https://www.mgm.gov.tr"
)

// Client queries the MGM service. It holds no per-call state and is safe
// for concurrent use.
type Client struct {
	baseURL    string
	origin     string
	httpClient *http.Client
	metrics    *Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL replaces the service root, e.g. with an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for every exchange. Timeouts and
// transports are configured there; the library sets none itself.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithOrigin replaces the Origin header value.
func WithOrigin(origin string) Option {
	return func(c *Client) {
		c.origin = origin
	}
}

// WithMetrics records every exchange on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a new MGM client
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		origin:     DefaultOrigin,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fetch performs a single GET against path with params appended to the
// query string. Only a completed exchange with status 200 is a success.
func (c *Client) fetch(ctx context.Context, path string, params url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Origin", c.origin)

	logger.Debugf("GET %s", endpoint)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(path, outcomeTransportError, time.Since(start))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.observe(path, outcomeBadStatus, time.Since(start))
		return nil, fmt.Errorf("API returned non-200 status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.observe(path, outcomeReadError, time.Since(start))
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.metrics.observe(path, outcomeOK, time.Since(start))
	logger.Debugf("GET %s: %d bytes in %s", path, len(body), time.Since(start).Round(time.Millisecond))
	return body, nil
}
