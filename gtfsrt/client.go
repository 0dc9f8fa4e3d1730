package gtfsrt

import (
	"io"
	"net/http"
	"time"
)

// Client fetches raw GTFS-RT protobuf payloads over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a feed client. A timeout of zero means no timeout;
// callers wanting cancellation impose it here, the decoder never retries.
func NewClient(timeout time.Duration) *Client {
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

// Fetch downloads one feed and returns the raw protobuf bytes.
func (c *Client) Fetch(url string) ([]byte, error) {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, &FeedFetchError{URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FeedFetchError{URL: url, Status: resp.StatusCode}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FeedFetchError{URL: url, Err: err}
	}
	return b, nil
}
