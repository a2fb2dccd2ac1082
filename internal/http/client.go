package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/asc/internal/auth"
	"github.com/fivetwenty-io/asc/internal/constants"
	"github.com/fivetwenty-io/asc/pkg/asc"
)

// MetricsRecorder observes every request the client sends. status is zero
// when no response was received.
type MetricsRecorder interface {
	ObserveRequest(method string, status int, duration time.Duration, err error)
}

// Client executes authenticated requests. It never interprets the status
// code; callers decode the Response.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	userAgent    string
	logger       asc.Logger
	debug        bool
	metrics      MetricsRecorder
	timeout      time.Duration
}

// Option configures the HTTP client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger asc.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHTTPClient sends requests through httpClient.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithTimeout bounds each request, including reading the body. It applies to
// the client given by WithHTTPClient regardless of option order, without
// modifying that client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithMetrics reports every request to recorder.
func WithMetrics(recorder MetricsRecorder) Option {
	return func(c *Client) {
		c.metrics = recorder
	}
}

// NewClient creates a client for baseURL. A nil tokenManager sends requests
// without an Authorization header.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   retryClient,
		tokenManager: tokenManager,
		userAgent:    constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.timeout > 0 {
		bounded := *client.httpClient.HTTPClient
		bounded.Timeout = client.timeout
		client.httpClient.HTTPClient = &bounded
	}

	return client
}

// neverRetry hands every outcome straight back. Retry and backoff policy
// belong to the caller.
func neverRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, nil
}

// Request represents an HTTP request. Path is relative to the base URL unless
// it is an absolute http(s) URL, as found in pagination links.
type Request struct {
	Method  string
	Path    string
	Query   asc.QueryPairs
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response with its body fully read.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Outcome converts the response for decoding.
func (r *Response) Outcome() asc.Outcome {
	return asc.Outcome{StatusCode: r.StatusCode, Body: r.Body}
}

// Do executes an HTTP request. The error is nil whenever a response arrived,
// whatever its status. Token failures are returned as produced by the token
// manager; anything that prevented a response is a *asc.TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.resolveURL(req.Path, req.Query)

	var body interface{}

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		body = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, &asc.TransportError{Method: req.Method, URL: fullURL, Err: err}
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, &asc.TransportError{Method: req.Method, URL: fullURL, Err: err}
			}

			return nil, err
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	start := time.Now()

	resp, err := c.send(httpReq)

	c.observe(req.Method, resp, time.Since(start), err)

	if err != nil {
		return nil, &asc.TransportError{Method: req.Method, URL: fullURL, Err: err}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   resp.StatusCode,
			"duration": time.Since(start).String(),
			"bytes":    len(resp.Body),
		})
	}

	return resp, nil
}

func (c *Client) send(httpReq *retryablehttp.Request) (*Response, error) {
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil && httpResp.Body != nil {
			_ = httpResp.Body.Close()
		}

		return nil, err
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

func (c *Client) observe(method string, resp *Response, duration time.Duration, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	c.metrics.ObserveRequest(method, status, duration, err)
}

func (c *Client) resolveURL(path string, query asc.QueryPairs) string {
	var builder bytes.Buffer

	if strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "http://") {
		builder.WriteString(path)
	} else {
		builder.WriteString(c.baseURL)
		builder.WriteString(path)
	}

	if encoded := query.Encode(); encoded != "" {
		if strings.Contains(builder.String(), "?") {
			builder.WriteByte('&')
		} else {
			builder.WriteByte('?')
		}

		builder.WriteString(encoded)
	}

	return builder.String()
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query asc.QueryPairs) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPatch,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}
