package fault_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/okian/leaguelogic/internal/domain/fault"
	. "github.com/smartystreets/goconvey/convey"
)

func TestErrorKinds(t *testing.T) {
	Convey("Given the three error kinds", t, func() {
		cause := errors.New("open secrets.json: no such file")
		cfgErr := fault.Configuration("source.credentials_source", "cannot read credentials", cause)
		shapeErr := &fault.DataShapeError{Row: 3, Column: "Confidence %", Value: "abc", Reason: "not numeric"}
		valErr := &fault.ValidationError{Path: "info", Rule: "must be an object"}

		Convey("Then each matches only its own sentinel", func() {
			So(errors.Is(cfgErr, fault.ErrConfiguration), ShouldBeTrue)
			So(errors.Is(cfgErr, fault.ErrDataShape), ShouldBeFalse)
			So(errors.Is(shapeErr, fault.ErrDataShape), ShouldBeTrue)
			So(errors.Is(shapeErr, fault.ErrValidation), ShouldBeFalse)
			So(errors.Is(valErr, fault.ErrValidation), ShouldBeTrue)
		})

		Convey("And matching survives wrapping", func() {
			wrapped := fmt.Errorf("render: %w", shapeErr)
			So(errors.Is(wrapped, fault.ErrDataShape), ShouldBeTrue)
			var target *fault.DataShapeError
			So(errors.As(wrapped, &target), ShouldBeTrue)
			So(target.Row, ShouldEqual, 3)
		})

		Convey("And configuration errors keep their cause", func() {
			So(errors.Is(cfgErr, cause), ShouldBeTrue)
		})

		Convey("And messages are human readable", func() {
			So(cfgErr.Error(), ShouldEqual, "configuration error: source.credentials_source: cannot read credentials: open secrets.json: no such file")
			So(shapeErr.Error(), ShouldEqual, `data shape error: row 3: column "Confidence %": value "abc": not numeric`)
			So(fault.DataShape("", "no tips recorded").Error(), ShouldEqual, "data shape error: no tips recorded")
			So(valErr.Error(), ShouldEqual, "validation error at info: must be an object")
			So((&fault.ValidationError{Rule: "not a mapping"}).Error(), ShouldEqual, "validation error: not a mapping")
		})
	})
}

func TestKind(t *testing.T) {
	Convey("Given assorted errors", t, func() {
		Convey("Then Kind names them for metrics labels", func() {
			So(fault.Kind(nil), ShouldEqual, "ok")
			So(fault.Kind(fault.Configuration("addr", "must not be empty", nil)), ShouldEqual, "configuration_error")
			So(fault.Kind(fault.DataShape("ROI per tip", "missing required column")), ShouldEqual, "data_shape_error")
			So(fault.Kind(&fault.ValidationError{Rule: "x"}), ShouldEqual, "validation_error")
			So(fault.Kind(context.DeadlineExceeded), ShouldEqual, "upstream_error")
		})
	})
}
