package bitbucket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a thin HTTP client for the Bitbucket Server/DC pull-request
// REST API. It handles Basic-auth headers and JSON decoding. There is
// no retry logic: each page is a single blocking GET, and any transport
// failure aborts the fetch that issued it.
type Client struct {
	baseURL    string
	auth       AuthenticatedUser
	httpClient *http.Client
}

// NewClient creates a client for the instance at baseURL (e.g.
// https://bitbucket.corp.example.com) using the given authenticated
// user's credentials.
func NewClient(baseURL string, auth AuthenticatedUser) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		auth:    auth,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// get performs one HTTP GET and unmarshals the JSON response into
// result. A 401 yields an AuthError; other non-2xx statuses are
// reported with the Bitbucket error envelope when the body carries one.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Basic "+c.auth.AuthToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request GET %s: %w", path, err)
	}

	body, readErr := io.ReadAll(resp.Body)
	resp.Body.Close()
	if readErr != nil {
		return fmt.Errorf("reading response body: %w", readErr)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &AuthError{BaseURL: c.baseURL}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope errorEnvelope
		if json.Unmarshal(body, &envelope) == nil && len(envelope.Errors) > 0 {
			msgs := make([]string, 0, len(envelope.Errors))
			for _, e := range envelope.Errors {
				msgs = append(msgs, e.Message)
			}
			return fmt.Errorf(
				"bitbucket API error (%d) on GET %s: %s",
				resp.StatusCode, path, strings.Join(msgs, "; "),
			)
		}
		return fmt.Errorf(
			"unexpected status %d on GET %s: %s",
			resp.StatusCode, path, string(body),
		)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshaling response from GET %s: %w", path, err)
	}

	return nil
}
