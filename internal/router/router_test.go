package router

import (
	"context"
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sagarsuperuser/todos/internal/httputil"
)

func noop(ctx context.Context, w http.ResponseWriter, r *http.Request, vars map[string]string) error {
	return nil
}

func TestTable(t *testing.T) {
	Convey("Given an empty routing table", t, func() {
		table := NewTable()
		So(table.Routes(), ShouldBeEmpty)

		Convey("When routes are registered through Get and Post", func() {
			table.Get("/a", noop)
			table.Post("/b", noop)

			Convey("Then each call adds exactly one entry in order", func() {
				routes := table.Routes()
				So(routes, ShouldHaveLength, 2)
				So(routes[0].Method(), ShouldEqual, http.MethodGet)
				So(routes[0].Path(), ShouldEqual, "/a")
				So(routes[1].Method(), ShouldEqual, http.MethodPost)
				So(routes[1].Path(), ShouldEqual, "/b")
			})
		})
	})
}

func TestRouteWrappers(t *testing.T) {
	Convey("Given a route built with wrappers", t, func() {
		var order []string
		wrapper := func(name string) RouteWrapper {
			return func(r Route) Route {
				next := r.Handler()
				return localRoute{
					method: r.Method(),
					path:   r.Path(),
					handler: func(ctx context.Context, w http.ResponseWriter, req *http.Request, vars map[string]string) error {
						order = append(order, name)
						return next(ctx, w, req, vars)
					},
				}
			}
		}

		var handler httputil.APIFunc = func(ctx context.Context, w http.ResponseWriter, r *http.Request, vars map[string]string) error {
			order = append(order, "handler")
			return nil
		}
		route := NewPostRoute("/x", handler, wrapper("first"), wrapper("second"))

		Convey("Then method and path are preserved", func() {
			So(route.Method(), ShouldEqual, http.MethodPost)
			So(route.Path(), ShouldEqual, "/x")
		})

		Convey("Then the last wrapper runs outermost", func() {
			So(route.Handler()(context.Background(), nil, nil, nil), ShouldBeNil)
			So(order, ShouldResemble, []string{"second", "first", "handler"})
		})
	})
}
