// Package dictionary asks an external dictionary API whether a candidate
// guess is a real word. The lookup fails closed: callers must treat an
// error the same way as "not a word" and leave all match state untouched.
package dictionary

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// IsValidWord reports whether the word exists in the dictionary. A non-OK
// status means "not a word"; a transport failure or timeout is an error.
func (that *Client) IsValidWord(ctx context.Context, word string) (bool, error) {
	lookupURL := fmt.Sprintf("%s/%s", that.baseURL, url.PathEscape(strings.ToLower(word)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build dictionary request: %w", err)
	}

	resp, err := that.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("dictionary lookup failed: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
