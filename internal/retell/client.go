// Package retell is an HTTP client for the Retell voice agent API.
package retell

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/bobmcallan/retell-mcp/internal/common"
	"github.com/bobmcallan/retell-mcp/internal/toolerr"
)

// DefaultBaseURL is the public API host.
const DefaultBaseURL = "https://api.retellai.com"

// maxResponseSize caps response bodies to prevent OOM from unexpectedly large responses.
const maxResponseSize = 50 << 20 // 50MB

// maxErrorMessage truncates unstructured error bodies.
const maxErrorMessage = 512

// Client executes requests against the platform API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	uploadDir  string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUploadDir allows knowledge base file sources read from dir.
func WithUploadDir(dir string) Option {
	return func(c *Client) {
		if dir == "" {
			return
		}
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		c.uploadDir = dir
	}
}

// NewClient creates a client for baseURL authenticating with apiKey.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *common.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API host.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CloseIdleConnections releases pooled connections to the platform.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// Do executes ep and returns the raw response body. An empty body yields a
// nil message. Non-success statuses become *toolerr.RemoteError.
func (c *Client) Do(ctx context.Context, ep Endpoint) (json.RawMessage, error) {
	c.logger.Debug().Str("method", ep.Method).Str("path", ep.Path).Msg("retell request")

	var (
		contentType string
		bodyReader  io.Reader
	)
	if ep.Body != nil {
		ct, r, err := ep.Body.Encode()
		if err != nil {
			return nil, errors.Wrapf(err, "%s %s", ep.Method, ep.Path)
		}
		contentType, bodyReader = ct, r
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, c.baseURL+ep.target(), bodyReader)
	if err != nil {
		return nil, errors.Wrapf(err, "build request %s %s", ep.Method, ep.Path)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("method", ep.Method).Str("path", ep.Path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("retell request failed")
		return nil, toolerr.Remote(err, ep.Method, ep.Path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, toolerr.Remote(errors.Wrap(err, "failed to read response"), ep.Method, ep.Path)
	}

	c.logger.Debug().Str("path", ep.Path).Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("retell response")

	if resp.StatusCode >= 400 {
		return nil, &toolerr.RemoteError{
			Method:     ep.Method,
			Path:       ep.Path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	return json.RawMessage(body), nil
}

// errorMessage extracts a meaningful message from an error response.
func errorMessage(body []byte) string {
	for _, key := range []string{"error_message", "message", "error"} {
		if r := gjson.GetBytes(body, key); r.Type == gjson.String && r.Str != "" {
			return r.Str
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorMessage {
		msg = msg[:maxErrorMessage] + "..."
	}
	return msg
}
