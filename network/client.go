// Package network provides the HTTP client shared by the player poller and the metadata lookup.
package network

import (
	"net/http"
	"time"

	"github.com/brokiem/mpc-discordrpc/constant"
)

// Client is the HTTP client shared across the application.
// Its timeout is an upper bound; callers pass shorter deadlines through the request context.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: &userAgent{next: newTransport()},
}

// newTransport keeps a small idle pool: the poller talks to one local host and the lookup to one remote API.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 8
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 90 * time.Second
	t.ResponseHeaderTimeout = 10 * time.Second
	return t
}

// userAgent stamps requests that do not carry their own User-Agent.
type userAgent struct {
	next http.RoundTripper
}

func (u *userAgent) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return u.next.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", constant.UserAgent)
	return u.next.RoundTrip(req)
}
