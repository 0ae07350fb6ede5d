package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HTTPClient is the concrete Client backed by net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// NewHTTPClient constructs an HTTPClient for the given base URL. A zero
// timeout disables the per-request deadline.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
	}
}

func (c *HTTPClient) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c *HTTPClient) Put(ctx context.Context, path string, body any, headers map[string]string) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, body, headers)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, headers map[string]string) (*Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Bodies are best-effort JSON; anything undecodable leaves a zero
	// Payload and the StatusClass still tells the caller what happened.
	var payload Payload
	raw, err := io.ReadAll(resp.Body)
	if err == nil && len(raw) > 0 {
		_ = json.Unmarshal(raw, &payload)
	}

	return &Response{Status: Classify(resp.StatusCode), Data: payload}, nil
}
