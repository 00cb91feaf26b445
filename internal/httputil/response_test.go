package httputil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReadJSON(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}
	read := func(body string, limit int64) (payload, error) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		err := ReadJSON(httptest.NewRecorder(), req, limit, &p)
		return p, err
	}

	Convey("Given request bodies", t, func() {
		Convey("A single object decodes, surrounding whitespace allowed", func() {
			p, err := read("  {\"title\":\"a\"}\n", 0)
			So(err, ShouldBeNil)
			So(p.Title, ShouldEqual, "a")
		})

		Convey("Trailing garbage is malformed", func() {
			_, err := read(`{"title":"a"} trailing garbage`, 0)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldStartWith, "malformed request body")
		})

		Convey("A second JSON value is malformed", func() {
			_, err := read(`{"title":"a"}{"title":"b"}`, 0)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unexpected data after JSON value")
		})

		Convey("An empty body is reported as such", func() {
			_, err := read("", 0)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "empty request body")
		})

		Convey("Bodies over the limit report the limit", func() {
			_, err := read(`{"title":"`+strings.Repeat("a", 100)+`"}`, 16)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "request body exceeds 16B")
		})
	})
}
