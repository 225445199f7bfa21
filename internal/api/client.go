package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/tidwall/gjson"

	apierrors "github.com/NYBSA/Loadmovegh-platform-sub000/internal/errors"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
)

// Client is the HTTP implementation of AssistantClient.
type Client struct {
	httpClient tls_client.HttpClient
	baseURL    string
	pageSize   int

	mu          sync.RWMutex
	accessToken string
	closed      bool
}

// Ensure Client implements AssistantClient
var _ AssistantClient = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithBaseURL overrides the production endpoint (staging, local dev).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithPageSize sets how many sessions GetSessions fetches per page.
// The service caps this at 50.
func WithPageSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithHTTPClient injects a transport, mainly for tests.
func WithHTTPClient(hc tls_client.HttpClient) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new assistant client. The access token must be
// non-empty; token issuance and refresh are owned by the auth layer.
func NewClient(accessToken string, timeoutSeconds int, opts ...ClientOption) (*Client, error) {
	if accessToken == "" {
		return nil, apierrors.NewUnauthorizedError("no access token configured")
	}
	if timeoutSeconds <= 0 {
		timeoutSeconds = 60
	}

	client := &Client{
		baseURL:     models.DefaultBaseURL,
		pageSize:    20,
		accessToken: accessToken,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(timeoutSeconds),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}
		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Close marks the client unusable. Safe to call twice.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// IsClosed returns whether the client is closed
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// GetAccessToken returns the current access token
func (c *Client) GetAccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// SetAccessToken swaps the bearer token after an external re-auth.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

// doJSON performs one request and returns the parsed response body.
// Transport failures and non-2xx statuses come back as taxonomy errors;
// a 2xx with an undecodable body is a ParseError.
func (c *Client) doJSON(ctx context.Context, method, url string, payload any) (gjson.Result, error) {
	if c.IsClosed() {
		return gjson.Result{}, fmt.Errorf("client is closed")
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	if ctx != nil {
		req = req.WithContext(ctx)
	}

	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}
	req.Header.Set("Authorization", "Bearer "+c.GetAccessToken())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, apierrors.NewTransportError(url, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<22))
	if err != nil {
		return gjson.Result{}, apierrors.NewTransportError(url, err)
	}

	if mapped := apierrors.FromStatusCode(resp.StatusCode, url, detailMessage(raw)); mapped != nil {
		return gjson.Result{}, mapped
	}

	if len(raw) == 0 {
		return gjson.Result{}, nil
	}
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, apierrors.NewParseError("response is not valid JSON", url)
	}
	return gjson.ParseBytes(raw), nil
}

// detailMessage pulls the service's error detail out of a failure body,
// falling back to the raw body.
func detailMessage(raw []byte) string {
	if gjson.ValidBytes(raw) {
		if detail := gjson.GetBytes(raw, "detail"); detail.Exists() && detail.Type == gjson.String {
			return detail.String()
		}
	}
	return string(raw)
}
