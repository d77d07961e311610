package echarts_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/okian/leaguelogic/internal/adapters/echarts"
	"github.com/okian/leaguelogic/internal/domain/model"
	"github.com/okian/leaguelogic/internal/domain/plot"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRender(t *testing.T) {
	Convey("Given chart data for three tips", t, func() {
		set := plot.Build([]model.Tip{
			{Correct: true, ROI: decimal.NewFromInt(10)},
			{Correct: false, ROI: decimal.NewFromInt(-5)},
			{Correct: true, ROI: decimal.RequireFromString("2.5")},
		})
		r := echarts.New(echarts.WithHeight("300px"), echarts.WithAssetsHost("https://assets.example/"))

		Convey("When rendering", func() {
			out, err := r.Render(set)

			Convey("Then each chart is a standalone document with its title", func() {
				So(err, ShouldBeNil)
				So(string(out.Accuracy), ShouldContainSubstring, plot.AccuracyTitle)
				So(string(out.ROI), ShouldContainSubstring, plot.ROITitle)
				So(string(out.Split), ShouldContainSubstring, plot.SplitTitle)
			})

			Convey("And the scripts come from the configured host", func() {
				So(string(out.Accuracy), ShouldContainSubstring, "https://assets.example/")
				So(string(out.Accuracy), ShouldContainSubstring, "300px")
			})

			Convey("And the donut carries both slice colours", func() {
				So(string(out.Split), ShouldContainSubstring, plot.ColorCorrect)
				So(string(out.Split), ShouldContainSubstring, plot.ColorIncorrect)
			})

			Convey("And the ROI bars are gold", func() {
				So(string(out.ROI), ShouldContainSubstring, plot.ColorROI)
			})

			Convey("And the chart options survive into the page", func() {
				So(string(out.Accuracy), ShouldContainSubstring, `"showSymbol":true`)
				So(string(out.Accuracy), ShouldContainSubstring, `"min":0`)
				So(string(out.Accuracy), ShouldContainSubstring, `"max":100`)
				So(string(out.ROI), ShouldContainSubstring, `"markLine"`)
				So(string(out.Split), ShouldContainSubstring, `"radius":["40%","75%"]`)
			})
		})
	})

	Convey("Given an empty log", t, func() {
		out, err := echarts.New().Render(plot.Build(nil))

		Convey("Then rendering still succeeds", func() {
			So(err, ShouldBeNil)
			So(len(out.Split), ShouldBeGreaterThan, 0)
		})
	})
}
