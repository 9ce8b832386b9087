// Package apitest provides a thin HTTP client wrapper and response
// assertion helpers for REST API tests.
package apitest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// NetworkError wraps a transport-level failure (connection refused, DNS,
// request timeout). HTTP error status codes are not network errors.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error for %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Client wraps an HTTP client with a base URL and a set of default headers
// applied to every request.
type Client struct {
	baseURL string
	headers http.Header
	http    *http.Client
}

// NewClient creates a client for the given API base URL with the default
// JSON headers.
func NewClient(baseURL string) *Client {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("User-Agent", "qa-automation-go/1.0")

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
		http:    &http.Client{Timeout: defaultRequestTimeout},
	}
}

// SetHeader sets a default header sent with every request, e.g. an API key.
func (c *Client) SetHeader(key, value string) {
	c.headers.Set(key, value)
}

// SetTimeout overrides the per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.http.Timeout = d
}

// Get issues a GET request. params may be nil.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

// Post issues a POST request with a JSON body. data may be nil.
func (c *Client) Post(ctx context.Context, path string, data any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, nil, data)
}

// Put issues a PUT request with a JSON body. data may be nil.
func (c *Client) Put(ctx context.Context, path string, data any) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, nil, data)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, data any) (*Response, error) {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var body io.Reader
	if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Set(key, v)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		return nil, &NetworkError{URL: fullURL, Err: err}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
		Body:       raw,
		Elapsed:    elapsed,
	}, nil
}
