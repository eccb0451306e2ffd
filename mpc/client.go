package mpc

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brokiem/mpc-discordrpc/network"
	"github.com/brokiem/mpc-discordrpc/util"
)

// DefaultURL is the variables page of a locally running player with the web interface enabled.
const DefaultURL = "http://localhost:13579/variables.html"

// Client polls the player's web interface.
type Client struct {
	URL  string
	HTTP *http.Client
}

// NewClient returns a Client for url using the shared HTTP client.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{URL: url, HTTP: network.Client}
}

// Fetch downloads and parses the current status.
func (c *Client) Fetch(ctx context.Context) (Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return Status{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Status{}, fmt.Errorf("player unreachable: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return Status{}, fmt.Errorf("player status page: status %d", resp.StatusCode)
	}

	return Parse(resp.Body)
}
