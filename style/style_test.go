package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRender(t *testing.T) {
	Convey("Rendered text keeps its content", t, func() {
		So(Fg(AccentColor)("Playing"), ShouldContainSubstring, "Playing")
		So(Bold("My Show"), ShouldContainSubstring, "My Show")
		So(Faint("Details"), ShouldContainSubstring, "Details")
	})

	Convey("Title pads the banner by one cell on each side", t, func() {
		So(lipgloss.Width(Title("mpcrpc")), ShouldEqual, len("mpcrpc")+2)
	})
}
