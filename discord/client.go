// Package discord publishes Rich Presence activities over Discord's local IPC socket.
package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/brokiem/mpc-discordrpc/presence"
	"github.com/google/uuid"
)

const (
	protocolVersion = 1
	cmdSetActivity  = "SET_ACTIVITY"
	evtError        = "ERROR"
	evtReady        = "READY"
)

// Client is a presence.Client backed by the Discord desktop app.
// It connects lazily and reconnects after a transport failure.
type Client struct {
	clientID string
	pid      int

	mu   sync.Mutex
	conn io.ReadWriteCloser
	dial func(ctx context.Context) (io.ReadWriteCloser, error)
}

// New returns a Client for the given application ID. No connection is made until first use.
func New(clientID string) *Client {
	return &Client{
		clientID: clientID,
		pid:      os.Getpid(),
		dial:     dialSocket,
	}
}

// Connect opens the socket and performs the handshake if not connected yet.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.connect(ctx)
}

func (c *Client) connect(ctx context.Context) error {
	if c.conn != nil {
		return nil
	}

	if c.clientID == "" {
		return ErrNoClientID
	}

	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}

	if err := withDeadline(ctx, conn); err != nil {
		_ = conn.Close()
		return err
	}

	if err := writeFrame(conn, opHandshake, handshake{Version: protocolVersion, ClientID: c.clientID}); err != nil {
		_ = conn.Close()
		return fmt.Errorf("handshake: %w", err)
	}

	resp, err := receive(conn, func(r response) bool { return r.Evt == evtReady || r.Evt == evtError })
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("handshake: %w", err)
	}

	if err := resp.err(); err != nil {
		_ = conn.Close()
		return err
	}

	c.conn = conn
	return nil
}

// SetActivity replaces the user's activity with payload.
func (c *Client) SetActivity(ctx context.Context, payload presence.Payload) error {
	return c.send(ctx, toActivity(payload))
}

// ClearActivity removes the user's activity.
func (c *Client) ClearActivity(ctx context.Context) error {
	return c.send(ctx, nil)
}

func (c *Client) send(ctx context.Context, a *activity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.connect(ctx); err != nil {
		return err
	}

	if err := withDeadline(ctx, c.conn); err != nil {
		c.reset()
		return err
	}

	nonce := uuid.NewString()
	cmd := command{
		Cmd: cmdSetActivity,
		Args: activityArgs{
			PID:      c.pid,
			Activity: a,
		},
		Nonce: nonce,
	}

	if err := writeFrame(c.conn, opFrame, cmd); err != nil {
		c.reset()
		return fmt.Errorf("set activity: %w", err)
	}

	resp, err := receive(c.conn, func(r response) bool { return r.Nonce == nonce })
	if err != nil {
		c.reset()
		return fmt.Errorf("set activity: %w", err)
	}

	return resp.err()
}

// Close releases the connection. The client may be used again afterwards.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	_ = writeFrame(c.conn, opClose, struct{}{})
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Client) reset() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}

// receive reads frames until one satisfies match. Pings are answered along the way.
func receive(rw io.ReadWriter, match func(response) bool) (response, error) {
	for {
		op, body, err := readFrame(rw)
		if err != nil {
			return response{}, err
		}

		switch op {
		case opPing:
			if err := writeFrame(rw, opPong, json.RawMessage(body)); err != nil {
				return response{}, err
			}
			continue
		case opClose:
			var reason closeReason
			_ = json.Unmarshal(body, &reason)
			return response{}, &Error{Code: reason.Code, Message: reason.Message}
		case opFrame:
		default:
			continue
		}

		var resp response
		if err := json.Unmarshal(body, &resp); err != nil {
			return response{}, fmt.Errorf("unmarshal: %w", err)
		}

		if match(resp) {
			return resp, nil
		}
	}
}

func (r response) err() error {
	if r.Evt != evtError {
		return nil
	}

	var reason closeReason
	_ = json.Unmarshal(r.Data, &reason)
	return &Error{Code: reason.Code, Message: reason.Message}
}

// withDeadline applies the context deadline to connections that support one.
// A bounded context on a connection without deadline support is refused.
func withDeadline(ctx context.Context, conn io.ReadWriteCloser) error {
	deadline, bounded := ctx.Deadline()

	d, ok := conn.(interface{ SetDeadline(time.Time) error })
	if !ok {
		if bounded {
			return ErrNoDeadline
		}
		return nil
	}

	if err := d.SetDeadline(deadline); err != nil {
		if bounded {
			return fmt.Errorf("%w: %w", ErrNoDeadline, err)
		}
	}
	return nil
}
