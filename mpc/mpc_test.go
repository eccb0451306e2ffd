package mpc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brokiem/mpc-discordrpc/presence"
	. "github.com/smartystreets/goconvey/convey"
)

// variablesPage mirrors the layout of the player's /variables.html.
func variablesPage(path, state, position, duration string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>MPC-HC WebServer - Variables</title></head>
<body class="page-variables">
<h1>MPC-HC WebServer - Variables</h1>
<p id="file">My_Show_[1080p].mkv</p>
<p id="filepatharg">C%%3a%%5canime%%5cMy_Show_%%5b1080p%%5d.mkv</p>
<p id="filepath">%s</p>
<p id="state">%s</p>
<p id="statestring">Playing</p>
<p id="position">100000</p>
<p id="positionstring">%s</p>
<p id="duration">600000</p>
<p id="durationstring">%s</p>
</body>
</html>`, path, state, position, duration)
}

func TestParse(t *testing.T) {
	Convey("Given a complete variables page", t, func() {
		page := variablesPage(`C:\anime\My_Show_[1080p].mkv`, "2", "00:01:40", "00:10:00")

		Convey("When it is parsed", func() {
			status, err := Parse(strings.NewReader(page))

			Convey("Then every field is extracted", func() {
				So(err, ShouldBeNil)
				So(status.FilePath, ShouldEqual, `C:\anime\My_Show_[1080p].mkv`)
				So(status.State, ShouldEqual, presence.Playing)
				So(status.Position, ShouldEqual, "00:01:40")
				So(status.Duration, ShouldEqual, "00:10:00")
			})
		})
	})

	Convey("Given an escaped file path", t, func() {
		page := variablesPage(`C:\anime\Tom &amp; Jerry.mkv`, "1", "00:00:05", "00:07:00")

		Convey("Then entities are decoded", func() {
			status, err := Parse(strings.NewReader(page))
			So(err, ShouldBeNil)
			So(status.FilePath, ShouldEqual, `C:\anime\Tom & Jerry.mkv`)
			So(status.State, ShouldEqual, presence.Paused)
		})
	})

	Convey("Given a page without the state element", t, func() {
		page := `<html><body><p id="filepath">a.mkv</p><p id="positionstring">00:01</p><p id="durationstring">00:02</p></body></html>`

		Convey("Then a ParseError names the missing field", func() {
			_, err := Parse(strings.NewReader(page))
			So(err, ShouldNotBeNil)

			var parseErr *ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
			So(parseErr.Field, ShouldEqual, FieldState)
		})
	})

	Convey("Given an unknown state code", t, func() {
		page := variablesPage("a.mkv", "9", "00:01", "00:02")

		Convey("Then the error wraps ErrInvalidState", func() {
			_, err := Parse(strings.NewReader(page))
			So(errors.Is(err, presence.ErrInvalidState), ShouldBeTrue)

			var parseErr *ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
			So(parseErr.Field, ShouldEqual, FieldState)
		})
	})
}

func TestClient(t *testing.T) {
	Convey("Given a player serving its variables page", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/variables.html" {
				http.NotFound(w, r)
				return
			}
			_, _ = fmt.Fprint(w, variablesPage(`D:\video\clip.mp4`, "0", "00:00:00", "00:03:00"))
		}))
		defer server.Close()

		Convey("Fetch should return the parsed status", func() {
			status, err := NewClient(server.URL + "/variables.html").Fetch(context.Background())
			So(err, ShouldBeNil)
			So(status.State, ShouldEqual, presence.Stopped)
			So(status.FilePath, ShouldEqual, `D:\video\clip.mp4`)
		})

		Convey("Fetch should fail on a non-200 response", func() {
			_, err := NewClient(server.URL + "/missing").Fetch(context.Background())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "404")
		})
	})

	Convey("An empty URL falls back to the default", t, func() {
		So(NewClient("").URL, ShouldEqual, DefaultURL)
	})
}
