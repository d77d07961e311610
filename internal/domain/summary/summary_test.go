package summary_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/okian/leaguelogic/internal/domain/model"
	"github.com/okian/leaguelogic/internal/domain/summary"
	. "github.com/smartystreets/goconvey/convey"
)

func tip(correct bool, confidence float64, hasConfidence bool, roi string) model.Tip {
	return model.Tip{
		Correct:       correct,
		Confidence:    confidence,
		HasConfidence: hasConfidence,
		ROI:           decimal.RequireFromString(roi),
	}
}

func TestCompute(t *testing.T) {
	Convey("Given outcomes [1,0,1,1] with confidence on two of the correct tips", t, func() {
		tips := []model.Tip{
			tip(true, 80, true, "10.0"),
			tip(false, 99, true, "-5.0"),
			tip(true, 90, true, "2.5"),
			tip(true, 0, false, "0"),
		}

		Convey("When computing the summary", func() {
			s := summary.Compute(tips)

			Convey("Then counts follow the outcomes", func() {
				So(s.Correct, ShouldEqual, 3)
				So(s.Total, ShouldEqual, 4)
				So(s.Incorrect(), ShouldEqual, 1)
				So(s.Correct, ShouldBeLessThanOrEqualTo, s.Total)
			})

			Convey("And the confidence mean ignores incorrect and blank tips", func() {
				So(s.HasAvgConfidence, ShouldBeTrue)
				So(s.AvgConfidence, ShouldEqual, 85)
				So(s.ConfidenceText(), ShouldEqual, "85.0%")
			})

			Convey("And the ROI is the exact sum", func() {
				So(s.ROI.Equal(decimal.RequireFromString("7.5")), ShouldBeTrue)
				So(s.ROIText(), ShouldEqual, "$7.50")
			})

			Convey("And the tiles are labelled in order", func() {
				So(s.Tiles(), ShouldResemble, []summary.Tile{
					{Label: "Correct Tips", Value: "3"},
					{Label: "Total Tips", Value: "4"},
					{Label: "Avg Confidence (Correct)", Value: "85.0%"},
					{Label: "Simulated ROI ($100)", Value: "$7.50"},
				})
			})
		})
	})

	Convey("Given values that drift in binary floating point", t, func() {
		var tips []model.Tip
		for i := 0; i < 10; i++ {
			tips = append(tips, tip(false, 0, false, "0.1"))
		}

		Convey("Then the sum stays exact until display", func() {
			s := summary.Compute(tips)
			So(s.ROI.Equal(decimal.NewFromInt(1)), ShouldBeTrue)
			So(s.ROIText(), ShouldEqual, "$1.00")
		})
	})

	Convey("Given a log with no correct tips", t, func() {
		tips := []model.Tip{tip(false, 70, true, "-100"), tip(false, 60, true, "-5.555")}
		s := summary.Compute(tips)

		Convey("Then the average is undefined and shown as N/A", func() {
			So(s.Correct, ShouldEqual, 0)
			So(s.HasAvgConfidence, ShouldBeFalse)
			So(s.ConfidenceText(), ShouldEqual, summary.NotAvailable)
		})

		Convey("And a loss is signed before the currency symbol", func() {
			So(s.ROIText(), ShouldEqual, "-$105.56")
		})
	})

	Convey("Given an empty log", t, func() {
		s := summary.Compute(nil)

		Convey("Then every figure has a defined display value", func() {
			So(s.Total, ShouldEqual, 0)
			So(s.Correct, ShouldEqual, 0)
			So(s.Incorrect(), ShouldEqual, 0)
			So(s.ConfidenceText(), ShouldEqual, "N/A")
			So(s.ROIText(), ShouldEqual, "$0.00")
		})
	})
}

func TestFormatDollars(t *testing.T) {
	Convey("Given assorted amounts", t, func() {
		Convey("Then they render with two decimals", func() {
			So(summary.FormatDollars(decimal.RequireFromString("0")), ShouldEqual, "$0.00")
			So(summary.FormatDollars(decimal.RequireFromString("1234.5")), ShouldEqual, "$1234.50")
			So(summary.FormatDollars(decimal.RequireFromString("-0.004")), ShouldEqual, "$0.00")
			So(summary.FormatDollars(decimal.RequireFromString("-5")), ShouldEqual, "-$5.00")
			So(summary.FormatDollars(decimal.RequireFromString("2.675")), ShouldEqual, "$2.68")
		})
	})
}
