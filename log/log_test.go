package log

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/brokiem/mpc-discordrpc/filesystem"
	"github.com/brokiem/mpc-discordrpc/key"
	"github.com/brokiem/mpc-discordrpc/where"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given file logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, true)
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)

		Convey("Then entries land in the dated log file", func() {
			Warnf("presence update failed: %s", "My Show")

			files := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(files, ShouldNotBeEmpty)

			content := string(lo.Must(filesystem.API().ReadFile(filepath.Join(where.Logs(), files[0].Name()))))
			So(content, ShouldContainSubstring, "presence update failed: My Show")
			So(content, ShouldContainSubstring, `"level":"warning"`)
		})

		Convey("Then the configured level applies", func() {
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
		})
	})

	Convey("Given an unknown level", t, func() {
		viper.Set(key.LogsLevel, "chatty")
		So(Setup(), ShouldBeNil)

		Convey("Then it falls back to info", func() {
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})
	})

	Convey("Given structured fields", t, func() {
		var b strings.Builder
		logrus.SetOutput(&b)
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		logrus.SetLevel(logrus.InfoLevel)

		WithFields(logrus.Fields{"state": "Playing"}).Info("tick")
		So(b.String(), ShouldContainSubstring, "state=Playing")
	})
}
