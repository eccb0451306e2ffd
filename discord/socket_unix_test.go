//go:build !windows

package discord

import (
	"context"
	"net"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSocketPaths(t *testing.T) {
	Convey("Given the runtime and temp directories", t, func() {
		t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
		t.Setenv("TMPDIR", "/tmp")
		t.Setenv("TMP", "")
		t.Setenv("TEMP", "")

		paths := socketPaths()

		Convey("Then the runtime dir is probed first", func() {
			So(paths[0], ShouldEqual, "/run/user/1000/discord-ipc-0")
			So(paths[9], ShouldEqual, "/run/user/1000/discord-ipc-9")
		})

		Convey("Then duplicate directories are probed once", func() {
			So(len(paths), ShouldEqual, 2*socketSlots)
		})
	})
}

func TestDialSocket(t *testing.T) {
	Convey("Given a listener on the first free slot", t, func() {
		dir := t.TempDir()
		t.Setenv("XDG_RUNTIME_DIR", dir)

		listener, err := net.Listen("unix", filepath.Join(dir, "discord-ipc-0"))
		So(err, ShouldBeNil)
		defer listener.Close()

		go func() {
			if conn, err := listener.Accept(); err == nil {
				_ = conn.Close()
			}
		}()

		conn, err := dialSocket(context.Background())
		So(err, ShouldBeNil)
		So(conn.Close(), ShouldBeNil)
	})
}
