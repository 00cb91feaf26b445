package controllers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	cerrdefs "github.com/containerd/errdefs"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/sagarsuperuser/todos/internal/common"
	"github.com/sagarsuperuser/todos/server/settings"
	"github.com/sagarsuperuser/todos/store"
	"github.com/sagarsuperuser/todos/store/db/memory"
)

var errDriver = errors.New("connection refused")

type failingDriver struct{}

func (failingDriver) GetDB() *sql.DB                 { return nil }
func (failingDriver) Ping(ctx context.Context) error { return errDriver }
func (failingDriver) Close() error                   { return nil }

func (failingDriver) CreateTodo(ctx context.Context, create *store.CreateTodo) (*store.Todo, error) {
	return nil, errDriver
}

func (failingDriver) ListTodos(ctx context.Context) ([]*store.Todo, error) {
	return nil, errDriver
}

func newRequest(method, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/api/todos", http.NoBody)
	} else {
		req = httptest.NewRequest(method, "/api/todos", strings.NewReader(body))
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestTodosController(t *testing.T) {
	Convey("Given todos controllers over an empty memory store", t, func() {
		at := time.Date(2017, 5, 10, 9, 30, 0, 0, time.UTC)
		st := store.New(memory.NewDB(common.FixedClock(at)))
		c := New(&settings.Settings{MaxBodySize: 64}, st)
		ctx := context.Background()

		Convey("List on an empty store returns an empty JSON array", func() {
			rec := httptest.NewRecorder()
			So(c.Todos.List(ctx, rec, newRequest(http.MethodGet, ""), nil), ShouldBeNil)

			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Header().Get("Content-Type"), ShouldEqual, "application/json")
			So(rec.Body.String(), ShouldEqual, "[]\n")
		})

		Convey("Create with a title answers 201 with the todo", func() {
			rec := httptest.NewRecorder()
			So(c.Todos.Create(ctx, rec, newRequest(http.MethodPost, `{"title":" write docs "}`), nil), ShouldBeNil)

			So(rec.Code, ShouldEqual, http.StatusCreated)
			var got TodoResp
			So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
			So(got.ID, ShouldEqual, int64(1))
			So(got.Title, ShouldEqual, "write docs")
			So(got.CreatedAt.Equal(at), ShouldBeTrue)
			So(got.UpdatedAt.Equal(at), ShouldBeTrue)

			Convey("And List returns it", func() {
				rec := httptest.NewRecorder()
				So(c.Todos.List(ctx, rec, newRequest(http.MethodGet, ""), nil), ShouldBeNil)

				var list []TodoResp
				So(json.Unmarshal(rec.Body.Bytes(), &list), ShouldBeNil)
				So(list, ShouldHaveLength, 1)
				So(list[0].Title, ShouldEqual, "write docs")
			})
		})

		Convey("The todo wire format uses camelCase timestamps", func() {
			rec := httptest.NewRecorder()
			So(c.Todos.Create(ctx, rec, newRequest(http.MethodPost, `{"title":"x"}`), nil), ShouldBeNil)

			var raw map[string]any
			So(json.Unmarshal(rec.Body.Bytes(), &raw), ShouldBeNil)
			So(raw, ShouldContainKey, "id")
			So(raw, ShouldContainKey, "title")
			So(raw, ShouldContainKey, "createdAt")
			So(raw, ShouldContainKey, "updatedAt")
		})

		Convey("Bad input is an invalid parameter error", func() {
			for _, body := range []string{
				"",
				"{not json",
				`{"title":""}`,
				`{"title":"   "}`,
				`{"title":"a"} trailing garbage`,
				`{"title":"a"}{"title":"b"}`,
			} {
				rec := httptest.NewRecorder()
				err := c.Todos.Create(ctx, rec, newRequest(http.MethodPost, body), nil)
				So(err, ShouldNotBeNil)
				So(cerrdefs.IsInvalidArgument(err), ShouldBeTrue)
			}

			list, _ := st.ListTodos(ctx)
			So(list, ShouldBeEmpty)
		})

		Convey("Titles longer than the store allows are invalid parameters", func() {
			wide := NewTodosController(st, 4096)
			rec := httptest.NewRecorder()
			body := `{"title":"` + strings.Repeat("a", store.MaxTitleLength+1) + `"}`

			err := wide.Create(ctx, rec, newRequest(http.MethodPost, body), nil)
			So(cerrdefs.IsInvalidArgument(err), ShouldBeTrue)
			So(err.Error(), ShouldEqual, store.ErrTitleTooLong.Error())
		})

		Convey("Oversized bodies mention the limit", func() {
			rec := httptest.NewRecorder()
			err := c.Todos.Create(ctx, rec, newRequest(http.MethodPost, `{"title":"`+strings.Repeat("a", 100)+`"}`), nil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "64B")
		})
	})

	Convey("Given todos controllers over a failing store", t, func() {
		c := NewTodosController(store.New(failingDriver{}), 1024)
		ctx := context.Background()

		Convey("Create reports a system error", func() {
			err := c.Create(ctx, httptest.NewRecorder(), newRequest(http.MethodPost, `{"title":"x"}`), nil)
			So(cerrdefs.IsInternal(err), ShouldBeTrue)
			So(errors.Is(err, errDriver), ShouldBeTrue)
		})

		Convey("List reports a system error", func() {
			err := c.List(ctx, httptest.NewRecorder(), newRequest(http.MethodGet, ""), nil)
			So(cerrdefs.IsInternal(err), ShouldBeTrue)
			So(errors.Is(err, errDriver), ShouldBeTrue)
		})
	})
}
