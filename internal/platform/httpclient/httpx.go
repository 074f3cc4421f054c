// Package httpclient provides a JSON HTTP client with a hard per-request timeout.
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"pipedriver/internal/platform/errors"
	"pipedriver/internal/platform/logx"
)

// Client is a thin HTTP client for the pipeline API. Each request is a single
// blocking round trip; there is no retry on timeout or transport failure.
type Client struct {
	httpClient *http.Client
	logger     logx.Logger
	config     Config
}

// Config holds the configuration for the HTTP client.
type Config struct {
	// Timeout is the hard request timeout.
	// Default: 300 seconds
	Timeout time.Duration

	// UserAgent is the User-Agent header value.
	// Default: "pipedriver/1.0"
	UserAgent string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:   300 * time.Second,
		UserAgent: "pipedriver/1.0",
	}
}

// New creates a new HTTP client with the given configuration.
func New(config Config, logger logx.Logger) *Client {
	if config.Timeout == 0 {
		config.Timeout = 300 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "pipedriver/1.0"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger.With("component", "httpclient"),
		config: config,
	}
}

// Request performs a single HTTP request. Transport failures and context
// cancellation surface as ErrTransport; the caller decides what to do next.
func (c *Client) Request(ctx context.Context, method, url string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for %s %s", method, url)
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	c.logger.Debug("HTTP request",
		"method", method,
		"url", url,
		"timeout_s", int(c.config.Timeout.Seconds()),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Warn("HTTP request failed",
			"method", method,
			"url", url,
			"error", err.Error(),
			"duration_ms", duration.Milliseconds(),
		)
		return nil, errors.Wrapf(errors.ErrTransport, "%s %s: %v", method, url, err)
	}

	c.logger.Debug("HTTP response received",
		"method", method,
		"url", url,
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)

	return resp, nil
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, url string, body io.Reader, headers map[string]string) (*http.Response, error) {
	return c.Request(ctx, http.MethodPost, url, body, headers)
}

// PostJSON POSTs a JSON document and returns the response body. Non-2xx
// status codes are transport-level failures for the pipeline API.
func (c *Client) PostJSON(ctx context.Context, url string, payload []byte) ([]byte, error) {
	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}

	resp, err := c.Post(ctx, url, bytes.NewReader(payload), headers)
	if err != nil {
		return nil, err
	}

	if err := CheckStatus(resp); err != nil {
		resp.Body.Close()
		return nil, errors.Wrapf(err, "request to %s failed", url)
	}

	return ReadBody(resp)
}

// ReadBody reads the response body and closes it.
// This is a convenience method to ensure the body is always closed.
func ReadBody(resp *http.Response) ([]byte, error) {
	if resp == nil {
		return nil, errors.New("response is nil")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	return body, nil
}

// CheckStatus validates the HTTP status code and returns an error if it's not successful.
func CheckStatus(resp *http.Response) error {
	if resp == nil {
		return errors.New("response is nil")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return errors.Wrapf(errors.ErrTransport, "HTTP %d: %s", resp.StatusCode, resp.Status)
}

// String returns a human-readable representation of the client configuration.
func (c *Client) String() string {
	return fmt.Sprintf("HTTPClient{timeout=%s, user_agent=%s}",
		c.config.Timeout,
		c.config.UserAgent,
	)
}
