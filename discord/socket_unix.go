//go:build !windows

package discord

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"

	"github.com/samber/lo"
)

const socketSlots = 10

// socketPaths lists the candidate sockets in the order Discord clients probe them.
func socketPaths() []string {
	dirs := lo.Uniq(lo.Compact([]string{
		os.Getenv("XDG_RUNTIME_DIR"),
		os.Getenv("TMPDIR"),
		os.Getenv("TMP"),
		os.Getenv("TEMP"),
		"/tmp",
	}))

	paths := make([]string, 0, len(dirs)*socketSlots)
	for _, dir := range dirs {
		for i := 0; i < socketSlots; i++ {
			paths = append(paths, filepath.Join(dir, fmt.Sprintf("discord-ipc-%d", i)))
		}
	}

	return paths
}

func dialSocket(ctx context.Context) (io.ReadWriteCloser, error) {
	var dialer net.Dialer

	for _, path := range socketPaths() {
		conn, err := dialer.DialContext(ctx, "unix", path)
		if err == nil {
			return conn, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, ErrNotRunning
}
