package discord

import (
	"errors"
	"fmt"
)

// ErrNotRunning is returned when no Discord IPC endpoint accepts a connection.
var ErrNotRunning = errors.New("discord is not running")

// ErrNoClientID is returned when dialing without an application ID.
var ErrNoClientID = errors.New("discord application id is not set")

// ErrNoDeadline is returned when a bounded call would run on a connection that cannot time out.
var ErrNoDeadline = errors.New("discord connection does not support deadlines")

// Error is a failure reported by Discord, either as an ERROR event or a close frame.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("discord: %s (code %d)", e.Message, e.Code)
}
