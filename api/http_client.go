// api/http_client.go
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"energy-viewer/config"
)

// TransportError reports a request that never completed or completed with a
// non-success status.
type TransportError struct {
	Method     string
	URL        string
	StatusCode int // 0 when no response arrived
	Status     string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s failed: %v", e.Method, e.URL, e.Err)
	}
	return "unexpected status code: " + e.Status
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: config.SMOOTHING_HTTP_TIMEOUT,
		},
	}
}

// Request makes a JSON request to the API and decodes the response
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		requestBody = jsonBody
	}

	h := map[string]string{"Content-Type": "application/json"}
	for key, value := range headers {
		h[key] = value
	}
	return c.do(ctx, method, endpoint, h, bytes.NewReader(requestBody), response)
}

// PostForm sends a form-encoded POST and decodes the JSON response.
func (c *HTTPClient) PostForm(ctx context.Context, endpoint string, form url.Values, response interface{}) error {
	headers := map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
		"Accept":       "application/json",
	}
	return c.do(ctx, http.MethodPost, endpoint, headers, strings.NewReader(form.Encode()), response)
}

// Get issues a GET and decodes the JSON response.
func (c *HTTPClient) Get(ctx context.Context, endpoint string, response interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, map[string]string{"Accept": "application/json"}, nil, response)
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, headers map[string]string, body io.Reader, response interface{}) error {
	target := c.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, URL: target, Err: err}
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return &TransportError{Method: method, URL: target, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &TransportError{Method: method, URL: target, StatusCode: res.StatusCode, Status: res.Status}
	}

	if response != nil {
		if err := json.Unmarshal(resBody, response); err != nil {
			return fmt.Errorf("failed to decode response of %s %s: %w", method, endpoint, err)
		}
	}

	return nil
}
