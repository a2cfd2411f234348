package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultUserAgent identifies the client to Wikimedia, which requires one.
const DefaultUserAgent = "everyday/1.0 (https://github.com/gravitrone/everyday)"

// ErrInvalidQuery is returned before any request is made for a bad query.
var ErrInvalidQuery = errors.New("invalid query")

// StatusError is a non-success HTTP response from the feed.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// Client wraps HTTP calls to the Wikimedia feed API.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL, token string, timeout ...time.Duration) *Client {
	httpTimeout := 30 * time.Second
	if len(timeout) > 0 && timeout[0] > 0 {
		httpTimeout = timeout[0]
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     token,
		userAgent: DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// SetToken updates the access token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// SetUserAgent overrides the Api-User-Agent header. Empty keeps the default.
func (c *Client) SetUserAgent(ua string) {
	if ua = strings.TrimSpace(ua); ua != "" {
		c.userAgent = ua
	}
}

// WithTimeout clones the client with a different HTTP timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	clone := NewClient(c.baseURL, c.token, timeout)
	clone.userAgent = c.userAgent
	return clone
}

func (c *Client) authorization() string {
	token := strings.TrimSpace(c.token)
	if token == "" {
		return ""
	}
	// Tokens copied from the API portal sometimes already carry the scheme.
	if strings.Contains(token, " ") {
		return token
	}
	return "Bearer " + token
}

// get executes a GET request and returns the raw response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if auth := c.authorization(); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	req.Header.Set("Api-User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, ok := extractAPIErrorBody(respBody)
		if !ok {
			msg = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
		}
		return nil, &StatusError{Code: resp.StatusCode, Message: msg}
	}

	return respBody, nil
}

// decode unmarshals a JSON response body.
func decode[T any](data []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// problem is the error body returned by the Wikimedia REST gateway.
type problem struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Detail     any    `json:"detail"`
	HTTPCode   int    `json:"httpCode"`
	HTTPReason string `json:"httpReason"`
	Message    string `json:"message"`
}

func extractAPIErrorBody(body []byte) (string, bool) {
	if len(body) == 0 {
		return "", false
	}

	var p problem
	if err := json.Unmarshal(body, &p); err != nil {
		return "", false
	}

	detail, _ := parseErrorValue(p.Detail)
	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = strings.TrimSpace(p.HTTPReason)
	}
	if detail == "" {
		detail = strings.TrimSpace(p.Message)
	}
	return formatAPIError(title, detail)
}

func parseErrorValue(raw any) (string, bool) {
	switch value := raw.(type) {
	case string:
		msg := strings.TrimSpace(value)
		if msg == "" {
			return "", false
		}
		return msg, true
	case map[string]any:
		if nested, ok := parseErrorValue(value["detail"]); ok {
			return nested, true
		}
		msg, _ := value["message"].(string)
		return formatAPIError("", msg)
	}
	return "", false
}

func formatAPIError(title, detail string) (string, bool) {
	title = strings.TrimSpace(title)
	detail = strings.TrimSpace(detail)
	switch {
	case title != "" && detail != "" && title != detail:
		return fmt.Sprintf("%s: %s", title, detail), true
	case title != "":
		return title, true
	case detail != "":
		return detail, true
	default:
		return "", false
	}
}
