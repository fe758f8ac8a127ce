package memos

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type AuthMethod interface {
	Apply(*http.Request)
}

// TokenAuth presents a Memos access token as a bearer credential.
type TokenAuth struct {
	Token string
}

func (a TokenAuth) Apply(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.Token)
}

// OpenIDAuth uses the legacy openId query parameter accepted by Memos
// instances that predate access tokens.
type OpenIDAuth struct {
	OpenID string
}

func (a OpenIDAuth) Apply(req *http.Request) {
	q := req.URL.Query()
	q.Set("openId", a.OpenID)
	req.URL.RawQuery = q.Encode()
}

// StatusError reports a non-200 response from the Memos API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed with status %d", e.Code)
}

type Client struct {
	httpClient *http.Client
	auth       AuthMethod
	baseURL    string
}

func NewClient(baseURL string, auth AuthMethod) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		auth:       auth,
		baseURL:    baseURL,
	}
}

func (c *Client) WithHTTPClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}

// makeRequest issues one GET of baseURL+path. The path is appended
// verbatim; it is expected to carry its own leading slash and query
// string. There is no retry: a failed request fails the run.
func (c *Client) makeRequest(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	c.auth.Apply(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &StatusError{Code: resp.StatusCode}
	}

	return resp, nil
}
