package network

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brokiem/mpc-discordrpc/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given a server echoing the User-Agent", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.UserAgent()))
		}))
		defer server.Close()

		read := func(req *http.Request) string {
			resp, err := Client.Do(req)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			body, err := io.ReadAll(resp.Body)
			So(err, ShouldBeNil)
			return string(body)
		}

		Convey("Requests without one get the application agent", func() {
			req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
			So(read(req), ShouldEqual, constant.UserAgent)
		})

		Convey("An explicit agent is preserved", func() {
			req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
			req.Header.Set("User-Agent", "custom")
			So(read(req), ShouldEqual, "custom")
		})
	})
}
