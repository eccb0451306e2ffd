//go:build windows

package discord

import (
	"context"
	"fmt"
	"io"

	"github.com/Microsoft/go-winio"
)

const socketSlots = 10

func socketPaths() []string {
	paths := make([]string, socketSlots)
	for i := range paths {
		paths[i] = fmt.Sprintf(`\\.\pipe\discord-ipc-%d`, i)
	}
	return paths
}

// dialSocket opens the first Discord pipe that accepts a connection.
// winio opens the pipe in overlapped mode so read and write deadlines apply.
func dialSocket(ctx context.Context) (io.ReadWriteCloser, error) {
	for _, path := range socketPaths() {
		conn, err := winio.DialPipeContext(ctx, path)
		if err == nil {
			return conn, nil
		}

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, ErrNotRunning
}
