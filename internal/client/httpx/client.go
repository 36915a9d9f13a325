package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client is a thin JSON client over a (usually chained) Doer. All portal
// services and the auth transport go through it, so every call picks up the
// full interceptor pipeline.
type Client struct {
	doer Doer
	base *url.URL
}

func NewClient(doer Doer, baseURL string) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	return &Client{doer: doer, base: u}, nil
}

// RequestOption mutates the outgoing request before dispatch.
type RequestOption func(*http.Request)

// WithRequireAuth marks the request as needing an authenticated session.
func WithRequireAuth() RequestOption {
	return func(req *http.Request) { MarkRequireAuth(req) }
}

// WithSkipRefresh marks the request as exempt from 401-triggered refresh.
func WithSkipRefresh() RequestOption {
	return func(req *http.Request) { MarkSkipRefresh(req) }
}

// WithQuery adds a query parameter.
func WithQuery(key, value string) RequestOption {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Set(key, value)
		req.URL.RawQuery = q.Encode()
	}
}

// JSON performs a request with an optional JSON body and decodes a JSON
// response into out (skipped when out is nil). Errors are the pipeline's
// normalized *apperr.Error values.
func (c *Client) JSON(ctx context.Context, method, path string, in, out any, opts ...RequestOption) error {
	req, err := c.newRequest(ctx, method, path, in, opts...)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// Bytes performs a request and returns the raw response body, e.g. for PDF
// downloads.
func (c *Client) Bytes(ctx context.Context, method, path string, opts ...RequestOption) ([]byte, error) {
	req, err := c.newRequest(ctx, method, path, nil, opts...)
	if err != nil {
		return nil, err
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}
	return data, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, in any, opts ...RequestOption) (*http.Request, error) {
	u := c.base.JoinPath(strings.Split(strings.Trim(path, "/"), "/")...)

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		// bytes.Reader gives net/http a GetBody, which the auth gate needs
		// to replay the request after a refresh.
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}
	return req, nil
}
