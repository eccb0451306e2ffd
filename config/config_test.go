package config

import (
	"testing"
	"time"

	"github.com/brokiem/mpc-discordrpc/filesystem"
	"github.com/brokiem/mpc-discordrpc/key"
	"github.com/brokiem/mpc-discordrpc/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should register every key", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("presence.show_remaining_time")
			So(result, ShouldEqual, "presence_show_remaining_time")
		})

		Convey("Field.Env should carry the application prefix", func() {
			field := Default[key.PollInterval]
			So(field.Env(), ShouldEqual, "MPCRPC_POLL_INTERVAL")
		})

		Convey("Should read a TOML file from the config directory", func() {
			content := "[title]\nreplace_dots = true\n\n[poll]\ninterval = 1000\n"
			So(filesystem.API().WriteFile(where.Config()+"/mpcrpc.toml", []byte(content), 0o644), ShouldBeNil)
			defer func() { _ = filesystem.API().Remove(where.Config() + "/mpcrpc.toml") }()

			viper.Reset()
			So(Setup(), ShouldBeNil)

			options := Load()
			So(options.Title.StripDots, ShouldBeTrue)
			So(options.PollInterval, ShouldEqual, time.Second)
		})

		Convey("Should honour environment overrides", func() {
			t.Setenv("MPCRPC_PRESENCE_SHOW_REMAINING_TIME", "true")

			viper.Reset()
			So(Setup(), ShouldBeNil)
			So(Load().ShowRemainingTime, ShouldBeTrue)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given the factory defaults", t, func() {
		viper.Reset()
		So(Setup(), ShouldBeNil)
		options := Load()

		Convey("Then the title pipeline matches the defaults", func() {
			So(options.Title.StripUnderscores, ShouldBeTrue)
			So(options.Title.StripBrackets, ShouldBeTrue)
			So(options.Title.StripFileExtension, ShouldBeTrue)
			So(options.Title.StripDots, ShouldBeFalse)
		})

		Convey("Then durations are converted from milliseconds", func() {
			So(options.PollInterval, ShouldEqual, 5*time.Second)
			So(options.CoverTimeout, ShouldEqual, 5*time.Second)
		})

		Convey("Then the player address points at the local web interface", func() {
			So(options.PollURL, ShouldEqual, "http://localhost:13579/variables.html")
		})
	})
}
