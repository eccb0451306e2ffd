package open

import (
	"testing"

	"github.com/brokiem/mpc-discordrpc/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given a URL", t, func() {
		url := "https://myanimelist.net/apiconfig"

		Convey("Linux uses xdg-open", func() {
			cmd, ok := command(constant.Linux, url)
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", url})
		})

		Convey("macOS uses open", func() {
			cmd, ok := command(constant.Darwin, url)
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"open", url})
		})

		Convey("Windows goes through the URL protocol handler", func() {
			cmd, ok := command(constant.Windows, url)
			So(ok, ShouldBeTrue)
			So(cmd.Args[1:], ShouldResemble, []string{"url.dll,FileProtocolHandler", url})
		})

		Convey("Unknown systems are rejected", func() {
			_, ok := command("plan9", url)
			So(ok, ShouldBeFalse)
		})
	})
}
