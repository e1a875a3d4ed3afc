package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Client is a thin HTTP client that stamps every request with a fixed
// User-Agent and classifies transport failures. It does not interpret
// status codes; callers decide what a non-2xx response means.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// New returns a Client whose requests carry userAgent and abort after
// timeout. A zero timeout disables the client-side deadline.
func New(userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// Get fetches url and returns the raw body together with the HTTP status
// code. The error is always a *TransportError when the exchange itself
// failed.
func (c *Client) Get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("NewRequest: %w", err)
	}
	return c.do(req)
}

// PostJSON marshals payload, posts it to url as application/json and returns
// the raw response body together with the HTTP status code.
func (c *Client) PostJSON(ctx context.Context, url string, payload any) ([]byte, int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("NewRequest: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, classify(req.URL.String(), err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, classify(req.URL.String(), err)
	}
	return body, resp.StatusCode, nil
}

// classify wraps err in a *TransportError, marking deadline expiry so the
// caller can map it to a distinct status.
func classify(url string, err error) error {
	te := &TransportError{URL: url, Err: err}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		te.Timeout = true
	} else if errors.Is(err, context.DeadlineExceeded) {
		te.Timeout = true
	}
	return te
}
