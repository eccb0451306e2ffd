package mal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/brokiem/mpc-discordrpc/auth"
	"github.com/brokiem/mpc-discordrpc/log"
	"github.com/brokiem/mpc-discordrpc/network"
	"github.com/brokiem/mpc-discordrpc/util"
)

const (
	// APIEndpoint is the MyAnimeList v2 REST root.
	APIEndpoint = "https://api.myanimelist.net/v2"

	// EnvClientID is consulted when no client ID is configured or stored.
	EnvClientID = "MAL_CLIENT_ID"

	clientIDHeader = "X-MAL-CLIENT-ID"
)

// ErrNoResults is returned when a search matches nothing.
var ErrNoResults = errors.New("no results found on MAL")

// Client performs unauthenticated, client-ID based requests against MyAnimeList.
type Client struct {
	BaseURL  string
	ClientID string
	HTTP     *http.Client
}

// NewClient returns a Client using the shared HTTP client and the resolved client ID.
func NewClient(configured string) *Client {
	return &Client{
		BaseURL:  APIEndpoint,
		ClientID: ResolveClientID(configured),
		HTTP:     network.Client,
	}
}

// ResolveClientID picks the configured ID, then the keyring, then the MAL_CLIENT_ID environment variable.
func ResolveClientID(configured string) string {
	if configured != "" {
		return configured
	}

	stored, err := auth.ClientID()
	if err != nil {
		log.Warnf("read MAL client id from keyring: %v", err)
	}
	if stored != "" {
		return stored
	}

	return os.Getenv(EnvClientID)
}

// SearchAnime returns at most limit entries matching query.
func (c *Client) SearchAnime(ctx context.Context, query string, limit int) ([]Anime, error) {
	u, err := url.Parse(c.BaseURL + "/anime")
	if err != nil {
		return nil, fmt.Errorf("mal search: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("mal search: %w", err)
	}
	req.Header.Set(clientIDHeader, c.ClientID)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mal search: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("mal search error: status %d", resp.StatusCode)
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("mal search decode: %w", err)
	}

	animes := make([]Anime, 0, len(result.Data))
	for _, node := range result.Data {
		animes = append(animes, node.Node)
	}
	return animes, nil
}
