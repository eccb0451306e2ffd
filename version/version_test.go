package version

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/brokiem/mpc-discordrpc/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare orders semantic versions", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"0.2.0", "0.2.0", 0},
			{"v0.3.0", "0.2.9", 1},
			{"0.2.0", "1.0.0", -1},
			{"1.10.0", "1.9.0", 1},
			{"v1.2", "1.2.0", 0},
			{"1.0.0-rc1", "1.0.0", -1},
			{"1.0.0-rc2", "1.0.0-rc1", 1},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}
	})

	Convey("Compare rejects malformed versions", t, func() {
		for _, tag := range []string{"latest", "1", "1.2.3.4", "1.-2.0", ""} {
			_, err := Compare(tag, "0.2.0")
			So(errors.Is(err, ErrMalformedTag), ShouldBeTrue)
		}
	})
}

func TestParseRelease(t *testing.T) {
	Convey("ParseRelease", t, func() {
		release, err := ParseRelease(" v0.4.1-beta ")
		So(err, ShouldBeNil)
		So(release, ShouldResemble, Release{Major: 0, Minor: 4, Patch: 1, Pre: "beta"})
		So(release.String(), ShouldEqual, "0.4.1-beta")

		final, err := ParseRelease("2.0")
		So(err, ShouldBeNil)
		So(final.String(), ShouldEqual, "2.0.0")
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		var hits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&hits, 1)
			_, _ = fmt.Fprint(w, `{"tag_name":"v1.2.3"}`)
		}))
		defer server.Close()

		previous := ReleasesURL
		ReleasesURL = server.URL
		defer func() { ReleasesURL = previous }()

		first, err := Latest(context.Background())
		So(err, ShouldBeNil)
		So(first, ShouldEqual, "1.2.3")

		Convey("Then the answer is cached", func() {
			second, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(second, ShouldEqual, "1.2.3")
			So(atomic.LoadInt32(&hits), ShouldEqual, 1)
		})
	})
}
