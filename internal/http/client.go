// Package http is the transport used by every back-office call. It wraps
// go-retryablehttp, runs the interceptor chain around each exchange and
// classifies the result.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/publicsuffix"

	"github.com/ashishkumar1990/laywer-client/internal/constants"
	"github.com/ashishkumar1990/laywer-client/internal/response"
	"github.com/ashishkumar1990/laywer-client/pkg/backoffice"
)

// Client is the HTTP client for the back-office API.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	logger       backoffice.Logger
	debug        bool
	userAgent    string
	interceptors *backoffice.InterceptorChain
	classifier   *response.Classifier
}

// Option configures the client.
type Option func(*Client)

// Request is a single call relative to the base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is a completed exchange and its classification.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	// URL is the final request URL after redirects.
	URL        *url.URL
	Redirected bool
	Outcome    backoffice.Outcome
}

// WithLogger sets the logger.
func WithLogger(logger backoffice.Logger) Option {
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

// WithTimeout bounds each attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithRetryConfig enables retries for connection errors, 429 and 5xx.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithInterceptors sets the interceptor chain run around every exchange.
func WithInterceptors(chain *backoffice.InterceptorChain) Option {
	return func(c *Client) {
		if chain != nil {
			c.interceptors = chain
		}
	}
}

// WithClassifier replaces the default response classifier.
func WithClassifier(classifier *response.Classifier) Option {
	return func(c *Client) {
		if classifier != nil {
			c.classifier = classifier
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client. Its jar and timeout
// are kept as given.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// NewClient creates a new HTTP client. Cookies are kept across calls so the
// session established by login is sent with later requests.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultRequestTimeout

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err == nil {
		retryClient.HTTPClient.Jar = jar
	}

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   retryClient,
		userAgent:    constants.DefaultUserAgent,
		interceptors: backoffice.NewInterceptorChain(),
		classifier:   response.New(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger != nil && client.httpClient.RetryMax > 0 {
		client.httpClient.Logger = leveledLogger{logger: client.logger}
	}

	return client
}

// Interceptors returns the chain run around every exchange.
func (c *Client) Interceptors() *backoffice.InterceptorChain {
	return c.interceptors
}

// Cookies returns the cookies the jar would send to the base URL.
func (c *Client) Cookies() []*http.Cookie {
	jar := c.httpClient.HTTPClient.Jar
	if jar == nil {
		return nil
	}

	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return nil
	}

	return jar.Cookies(base)
}

// SetCookies seeds the jar for the base URL, for example with a session
// saved by an earlier process.
func (c *Client) SetCookies(cookies []*http.Cookie) {
	jar := c.httpClient.HTTPClient.Jar
	if jar == nil || len(cookies) == 0 {
		return
	}

	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return
	}

	jar.SetCookies(base, cookies)
}

// Do executes a request. Responses with a failure status are returned
// together with the classified *backoffice.FailureError. Transport failures
// return a nil response and an error wrapping backoffice.ErrTransport.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	intercepted := &backoffice.Request{
		Method:   req.Method,
		URL:      req.Path,
		Headers:  make(http.Header),
		Body:     body,
		Metadata: map[string]interface{}{},
	}

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		c.completed(ctx, intercepted, &backoffice.Response{Error: err})

		return nil, err
	}

	httpReq, err := c.newRequest(ctx, req, intercepted)
	if err != nil {
		c.completed(ctx, intercepted, &backoffice.Response{Error: err})

		return nil, err
	}

	c.logRequest(httpReq.Request, body)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil && httpResp.Body != nil {
			_ = httpResp.Body.Close()
		}

		err = fmt.Errorf("%w: %s %s: %w", backoffice.ErrTransport, req.Method, req.Path, err)
		c.completed(ctx, intercepted, &backoffice.Response{Error: err})

		return nil, err
	}

	resp, err := c.read(httpResp)
	if err != nil {
		err = fmt.Errorf("%w: reading %s %s: %w", backoffice.ErrTransport, req.Method, req.Path, err)
		c.completed(ctx, intercepted, &backoffice.Response{StatusCode: httpResp.StatusCode, Headers: httpResp.Header, Error: err})

		return nil, err
	}

	c.logResponse(resp)

	failure := resp.Outcome.Err()
	c.completed(ctx, intercepted, &backoffice.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      failure,
	})

	return resp, failure
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
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

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
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

func (c *Client) newRequest(ctx context.Context, req *Request, intercepted *backoffice.Request) (*retryablehttp.Request, error) {
	target := c.baseURL + intercepted.URL
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var rawBody interface{}
	if intercepted.Body != nil {
		rawBody = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, intercepted.Method, target, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if intercepted.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, values := range intercepted.Headers {
		httpReq.Header.Del(key)

		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	return httpReq, nil
}

func (c *Client) read(httpResp *http.Response) (*Response, error) {
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.Request != nil {
		resp.URL = httpResp.Request.URL
		resp.Redirected = httpResp.Request.Response != nil
	}

	resp.Outcome = c.classifier.Classify(response.Raw{
		StatusCode: resp.StatusCode,
		Header:     resp.Headers,
		Body:       body,
		URL:        resp.URL,
		Redirected: resp.Redirected,
	})

	return resp, nil
}

// completed runs the response interceptors. Their failures never change
// the result of the call.
func (c *Client) completed(ctx context.Context, req *backoffice.Request, resp *backoffice.Response) {
	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil && c.logger != nil {
		c.logger.Warn("Response interceptor failed", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL,
			"error":  err.Error(),
		})
	}
}

func (c *Client) logRequest(req *http.Request, body []byte) {
	if !c.debug || c.logger == nil {
		return
	}

	fields := map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	}
	if len(body) > 0 {
		fields["body"] = string(body)
	}

	c.logger.Debug("HTTP Request", fields)
}

func (c *Client) logResponse(resp *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status": resp.StatusCode,
		"body":   string(resp.Body),
	})
}

func encodeBody(body interface{}) ([]byte, error) {
	switch value := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return value, nil
	case json.RawMessage:
		return value, nil
	case io.Reader:
		var buf bytes.Buffer

		_, err := buf.ReadFrom(value)
		if err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}

		return buf.Bytes(), nil
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	return encoded, nil
}

// IsTransport reports whether err means no response was received.
func IsTransport(err error) bool {
	return errors.Is(err, backoffice.ErrTransport)
}
