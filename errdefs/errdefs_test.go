package errdefs

import (
	"errors"
	"fmt"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassification(t *testing.T) {
	Convey("Given a plain cause", t, func() {
		cause := errors.New("boom")

		Convey("InvalidParameter is recognised and keeps the cause", func() {
			err := InvalidParameter(cause)
			So(cerrdefs.IsInvalidArgument(err), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "boom")
		})

		Convey("Unavailable is recognised", func() {
			So(cerrdefs.IsUnavailable(Unavailable(cause)), ShouldBeTrue)
		})

		Convey("System is recognised", func() {
			So(cerrdefs.IsInternal(System(cause)), ShouldBeTrue)
		})

		Convey("Classification survives further wrapping", func() {
			err := fmt.Errorf("handler: %w", InvalidParameter(cause))
			So(cerrdefs.IsInvalidArgument(err), ShouldBeTrue)
		})
	})

	Convey("Given a nil error", t, func() {
		So(InvalidParameter(nil), ShouldBeNil)
		So(Unavailable(nil), ShouldBeNil)
		So(System(nil), ShouldBeNil)
	})

	Convey("Given an already classified error", t, func() {
		err := InvalidParameter(errors.New("bad"))
		So(InvalidParameter(err), ShouldEqual, err)
	})
}
