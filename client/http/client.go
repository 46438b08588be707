package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cyphera/circle-w3s/circleerr"
	"github.com/cyphera/circle-w3s/logger"
)

// ErrPathEscapesBase is returned when a request path would leave the
// configured base URL.
var ErrPathEscapesBase = errors.New("path escapes base URL")

// RequestOption represents a function that can modify an HTTP request
type RequestOption func(*http.Request)

// ClientOption represents a function that can modify the HTTP client
type ClientOption func(*HTTPClient)

// Middleware represents a function that wraps an http.RoundTripper
type Middleware func(http.RoundTripper) http.RoundTripper

// HTTPClient executes JSON requests against a single base URL. It holds no
// per-request state and is safe to share between goroutines; connection
// pooling is left to the underlying http.Client.
type HTTPClient struct {
	httpClient     *http.Client
	timeout        *time.Duration
	baseURL        *url.URL
	apiKey         string
	defaultHeaders map[string]string
	middlewares    []Middleware
	metrics        MetricsCollector
	log            *zap.Logger
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       string
}

// IsSuccess reports a 2xx status.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NewHTTPClient creates a client rooted at baseURL.
func NewHTTPClient(baseURL string, options ...ClientOption) (*HTTPClient, error) {
	parsed, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, &circleerr.ConfigError{Field: "base URL", Err: err}
	}

	client := &HTTPClient{
		httpClient: &http.Client{},
		baseURL:    parsed,
		defaultHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		metrics: &NoopMetricsCollector{},
	}

	// Apply all client options
	for _, option := range options {
		option(client)
	}

	if client.log == nil {
		client.log = logger.L()
	}

	if client.timeout != nil {
		client.httpClient.Timeout = *client.timeout
	}

	// Apply middlewares to the transport
	if len(client.middlewares) > 0 {
		transport := client.httpClient.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}

		// Apply middlewares in reverse order so the first one is outermost
		for i := len(client.middlewares) - 1; i >= 0; i-- {
			transport = client.middlewares[i](transport)
		}
		client.httpClient.Transport = transport
	}

	return client, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("must not be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("missing host")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, errors.New("must not carry a query or fragment")
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""
	return u, nil
}

// WithAPIKey attaches "Authorization: Bearer <key>" to every request.
func WithAPIKey(apiKey string) ClientOption {
	return func(c *HTTPClient) {
		c.apiKey = apiKey
	}
}

// WithDefaultHeader adds a default header to all requests
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *HTTPClient) {
		c.defaultHeaders[key] = value
	}
}

// WithUserAgent sets the User-Agent header on all requests
func WithUserAgent(userAgent string) ClientOption {
	return WithDefaultHeader("User-Agent", userAgent)
}

// WithTimeout sets the timeout for all requests, whatever the option order
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.timeout = &timeout
	}
}

// WithHTTPClient uses a copy of httpClient as the underlying client. The
// caller's value is never modified; timeouts and middlewares apply to the
// copy only.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *HTTPClient) {
		if httpClient == nil {
			return
		}
		cp := *httpClient
		c.httpClient = &cp
	}
}

// WithMiddleware adds a middleware to the client
func WithMiddleware(middleware Middleware) ClientOption {
	return func(c *HTTPClient) {
		c.middlewares = append(c.middlewares, middleware)
	}
}

// WithMetricsCollector sets the metrics collector
func WithMetricsCollector(collector MetricsCollector) ClientOption {
	return func(c *HTTPClient) {
		c.metrics = collector
	}
}

// WithLogger sets the logger used for per-request logging
func WithLogger(log *zap.Logger) ClientOption {
	return func(c *HTTPClient) {
		c.log = log
	}
}

// WithHeader adds a header to the request
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// WithQueryParam adds a query parameter to the request
func WithQueryParam(key, value string) RequestOption {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Add(key, value)
		req.URL.RawQuery = q.Encode()
	}
}

// BaseURL returns the configured base URL.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL.String()
}

// ResolveURL joins p onto the base URL. Absolute URLs, scheme-relative
// paths and dot segments that climb above the base path are rejected.
func (c *HTTPClient) ResolveURL(p string) (*url.URL, error) {
	ref, err := url.Parse(p)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", p, err)
	}
	if ref.Scheme != "" || ref.Host != "" || ref.User != nil || strings.HasPrefix(p, "//") {
		return nil, fmt.Errorf("%w: %q", ErrPathEscapesBase, p)
	}

	if climbsAboveRoot(ref.Path) {
		return nil, fmt.Errorf("%w: %q", ErrPathEscapesBase, p)
	}

	joined := path.Clean(c.baseURL.Path + "/" + ref.Path)
	if strings.HasSuffix(ref.Path, "/") && joined != "/" {
		joined += "/"
	}

	resolved := *c.baseURL
	resolved.Path = joined
	resolved.RawQuery = ref.RawQuery
	return &resolved, nil
}

// Do builds and executes a request and reads the whole body. body, when
// not nil, is marshalled to JSON. A non-2xx status is not an error here;
// see Execute for envelope handling.
func (c *HTTPClient) Do(ctx context.Context, method, p string, body interface{}, options ...RequestOption) (*Response, error) {
	start := time.Now()

	target, err := c.ResolveURL(p)
	if err != nil {
		return nil, err
	}
	fullURL := target.String()

	// Prepare the request body
	var bodyReader io.Reader
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(RequestIDHeader, requestIDFor(ctx))
	for key, value := range c.defaultHeaders {
		req.Header.Set(key, value)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	for _, option := range options {
		option(req)
	}
	requestID := req.Header.Get(RequestIDHeader)

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.metrics.RecordRequestError(method, target.Path)
		c.log.Error("HTTP request failed",
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.String("requestId", requestID),
			zap.Error(err),
			zap.Duration("duration", duration))
		return nil, &circleerr.TransportError{Method: method, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	// Read the whole body first so a failed decode can still report it.
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordRequestError(method, target.Path)
		return nil, &circleerr.TransportError{Method: method, URL: fullURL, Err: fmt.Errorf("reading response body: %w", err)}
	}

	c.metrics.RecordRequestDuration(method, target.Path, resp.StatusCode, duration)
	c.metrics.RecordRequestCount(method, target.Path, resp.StatusCode)

	out := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       string(bodyBytes),
	}

	if !out.IsSuccess() {
		c.metrics.RecordRequestError(method, target.Path)
		c.log.Warn("HTTP error response",
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.String("requestId", requestID),
			zap.Int("status", resp.StatusCode),
			zap.String("body", out.Body),
			zap.Duration("duration", duration))
		return out, nil
	}

	c.log.Info("HTTP request successful",
		zap.String("method", method),
		zap.String("url", fullURL),
		zap.String("requestId", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return out, nil
}

// LoggingMiddleware creates a middleware that logs requests and responses
// at debug level. The Authorization header is never logged.
func LoggingMiddleware(log *zap.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &loggingRoundTripper{next: next, log: log}
	}
}

type loggingRoundTripper struct {
	next http.RoundTripper
	log  *zap.Logger
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	l.log.Debug("HTTP request started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Any("headers", redactHeaders(req.Header)))

	resp, err := l.next.RoundTrip(req)

	duration := time.Since(start)
	if err != nil {
		l.log.Error("HTTP request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err),
			zap.Duration("duration", duration))
		return resp, err
	}

	l.log.Debug("HTTP response received",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration))

	return resp, nil
}

// climbsAboveRoot reports whether the ".." segments of p walk above its
// starting directory.
func climbsAboveRoot(p string) bool {
	depth := 0
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".":
		case "..":
			depth--
			if depth < 0 {
				return true
			}
		default:
			depth++
		}
	}
	return false
}

func redactHeaders(h http.Header) http.Header {
	out := h.Clone()
	if out.Get("Authorization") != "" {
		out.Set("Authorization", "[REDACTED]")
	}
	return out
}
