package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/sagarsuperuser/todos/internal/common"
	"github.com/sagarsuperuser/todos/store"
)

func TestMemoryDriver(t *testing.T) {
	Convey("Given an empty memory driver", t, func() {
		at := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
		drv := NewDB(common.FixedClock(at))
		ctx := context.Background()

		So(drv.GetDB(), ShouldBeNil)
		So(drv.Ping(ctx), ShouldBeNil)

		Convey("Listing returns an empty, non-nil slice", func() {
			list, err := drv.ListTodos(ctx)
			So(err, ShouldBeNil)
			So(list, ShouldNotBeNil)
			So(list, ShouldBeEmpty)
		})

		Convey("When todos are created", func() {
			first, err := drv.CreateTodo(ctx, &store.CreateTodo{Title: "first"})
			So(err, ShouldBeNil)
			second, err := drv.CreateTodo(ctx, &store.CreateTodo{Title: "second"})
			So(err, ShouldBeNil)

			Convey("Then ids increase and timestamps come from the clock", func() {
				So(first.ID, ShouldEqual, int64(1))
				So(second.ID, ShouldEqual, int64(2))
				So(first.CreatedAt.Equal(at), ShouldBeTrue)
				So(first.UpdatedAt.Equal(at), ShouldBeTrue)
			})

			Convey("Then listing returns them in id order", func() {
				list, err := drv.ListTodos(ctx)
				So(err, ShouldBeNil)
				So(list, ShouldHaveLength, 2)
				So(list[0].Title, ShouldEqual, "first")
				So(list[1].Title, ShouldEqual, "second")
			})

			Convey("Then returned todos do not alias driver state", func() {
				list, _ := drv.ListTodos(ctx)
				list[0].Title = "changed"
				again, _ := drv.ListTodos(ctx)
				So(again[0].Title, ShouldEqual, "first")
			})
		})

		Convey("Concurrent creates get distinct ids", func() {
			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, _ = drv.CreateTodo(ctx, &store.CreateTodo{Title: "t"})
				}()
			}
			wg.Wait()

			list, err := drv.ListTodos(ctx)
			So(err, ShouldBeNil)
			So(list, ShouldHaveLength, 50)
			seen := make(map[int64]bool)
			for _, todo := range list {
				seen[todo.ID] = true
			}
			So(seen, ShouldHaveLength, 50)
		})

		Convey("A cancelled context is reported", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := drv.CreateTodo(cctx, &store.CreateTodo{Title: "x"})
			So(err, ShouldEqual, context.Canceled)
			So(drv.Ping(cctx), ShouldEqual, context.Canceled)
		})
	})
}
