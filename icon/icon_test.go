package icon

import (
	"fmt"
	"testing"

	"github.com/brokiem/mpc-discordrpc/key"
	"github.com/brokiem/mpc-discordrpc/presence"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		for i := range icons {
			target := i

			Convey(fmt.Sprintf("Icon %d renders for each variant", target), func() {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(Get(target), ShouldNotBeEmpty)
				}
			})
		}

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Success), ShouldBeEmpty)
		})
	})
}

func TestState(t *testing.T) {
	Convey("Playback states map onto their icons", t, func() {
		So(State(presence.Playing), ShouldEqual, Playing)
		So(State(presence.Paused), ShouldEqual, Paused)
		So(State(presence.Stopped), ShouldEqual, Stopped)
		So(State(presence.Idle), ShouldEqual, Idle)
	})
}
