// Package http implements the authenticated HTTP transport for the Ontraport
// API. It builds one request at a time, attaches the credential headers,
// encodes payloads as query parameters for reads and JSON bodies for writes,
// and surfaces non-2xx responses as *ontraport.APIError.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/ontraport-client/internal/constants"
	"github.com/fivetwenty-io/ontraport-client/pkg/ontraport"
)

// Request represents a single API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents a raw API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte

	// RequestInfo describes the request that produced this response. Always
	// populated; callers decide whether to expose it (debug mode).
	RequestInfo *ontraport.RequestInfo
}

// Client is the HTTP transport.
type Client struct {
	baseURL    string
	appID      string
	apiKey     string
	httpClient *retryablehttp.Client
	userAgent  string
	logger     ontraport.Logger
	debug      bool
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the structured logger used for debug output.
func WithLogger(logger ontraport.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries for transient failures (connection errors,
// 429, and 5xx responses).
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout bounds each attempt of an HTTP request.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates a new transport for the given base URL and credentials.
// Retries are disabled unless WithRetryConfig is supplied; the client is
// single-attempt, fail-fast by default.
func NewClient(baseURL, appID, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    baseURL,
		appID:      appID,
		apiKey:     apiKey,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a single request against the API.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, info, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": info.Method,
			"url":    info.URL,
			"body":   info.Body,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode:  httpResp.StatusCode,
		Headers:     httpResp.Header,
		Body:        body,
		RequestInfo: info,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    info.URL,
			"bytes":  len(body),
		})
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return resp, &ontraport.APIError{
			StatusCode: httpResp.StatusCode,
			Status:     http.StatusText(httpResp.StatusCode),
			Body:       string(body),
		}
	}

	return resp, nil
}

// buildRequest assembles the retryablehttp request and its description.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, *ontraport.RequestInfo, error) {
	fullURL := c.baseURL + req.Path

	info := &ontraport.RequestInfo{
		Method: req.Method,
		URL:    fullURL,
	}

	var bodyReader io.Reader

	if req.Method == http.MethodGet {
		if len(req.Query) > 0 {
			fullURL += "?" + req.Query.Encode()
			info.URL = fullURL
		}
	} else if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, nil, fmt.Errorf("encoding request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)

		if payload, ok := req.Body.(map[string]interface{}); ok {
			info.Body = payload
		}
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Api-Appid", c.appID)
	httpReq.Header.Set("Api-Key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, info, nil
}

// Get performs a GET request. The payload, if any, is encoded as query
// parameters.
func (c *Client) Get(ctx context.Context, path string, payload map[string]interface{}) (*Response, error) {
	query := url.Values{}
	for key, value := range payload {
		query.Set(key, fmt.Sprintf("%v", value))
	}

	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request with a JSON body.
func (c *Client) Delete(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Body: body})
}
