// Package plot builds the series behind the three dashboard charts. It only
// shapes data; rendering lives in the echarts adapter.
package plot

import (
	"github.com/okian/leaguelogic/internal/domain/model"
	"github.com/okian/leaguelogic/internal/domain/summary"
)

// Section headings, chart titles and axis labels.
const (
	AccuracyHeading = "Prediction Accuracy Over Time"
	ROIHeading      = "ROI Per Tip ($100 Bets)"
	SplitHeading    = "Correct vs Incorrect Tips"

	AccuracyTitle = "Accuracy Per Match"
	ROITitle      = "ROI Per Tip"
	SplitTitle    = "Tip Accuracy Split"

	XLabel        = "Tip #"
	AccuracyLabel = "Accuracy (%)"
	ROILabel      = "Profit / Loss ($)"
)

// Chart colours.
const (
	ColorCorrect   = "#2ca02c"
	ColorIncorrect = "#d62728"
	ColorROI       = "#d4af37"
)

// Point is one sample on a chart with a 1-based tip index on the x axis.
type Point struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// Accuracy is the per-tip hit line. Values are 0 or 100.
type Accuracy struct {
	Heading string  `json:"heading"`
	Title   string  `json:"title"`
	Points  []Point `json:"points"`
	YMin    float64 `json:"y_min"`
	YMax    float64 `json:"y_max"`
}

// ROI is the per-tip profit and loss bar series, with a reference line at
// Baseline.
type ROI struct {
	Heading  string  `json:"heading"`
	Title    string  `json:"title"`
	Bars     []Point `json:"bars"`
	Baseline float64 `json:"baseline"`
}

// Slice is one segment of the split donut.
type Slice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Split is the correct/incorrect donut. Slice values always sum to the number
// of tips.
type Split struct {
	Heading string  `json:"heading"`
	Title   string  `json:"title"`
	Slices  []Slice `json:"slices"`
}

// Set groups the three charts in display order.
type Set struct {
	Accuracy Accuracy `json:"accuracy"`
	ROI      ROI      `json:"roi"`
	Split    Split    `json:"split"`
}

// Build derives all three charts from tips in a single pass.
func Build(tips []model.Tip) Set {
	s := summary.Compute(tips)
	return Set{
		Accuracy: AccuracyOf(tips),
		ROI:      ROIOf(tips),
		Split:    SplitOf(s),
	}
}

// AccuracyOf maps each tip to outcome x 100 at its 1-based index.
func AccuracyOf(tips []model.Tip) Accuracy {
	points := make([]Point, len(tips))
	for i, t := range tips {
		points[i] = Point{Index: i + 1, Value: float64(t.Outcome() * 100)}
	}
	return Accuracy{Heading: AccuracyHeading, Title: AccuracyTitle, Points: points, YMin: 0, YMax: 100}
}

// ROIOf maps each tip to its signed ROI at its 1-based index.
func ROIOf(tips []model.Tip) ROI {
	bars := make([]Point, len(tips))
	for i, t := range tips {
		v, _ := t.ROI.Float64()
		bars[i] = Point{Index: i + 1, Value: v}
	}
	return ROI{Heading: ROIHeading, Title: ROITitle, Bars: bars, Baseline: 0}
}

// SplitOf returns the two donut slices. An empty log yields two zero slices.
func SplitOf(s summary.Summary) Split {
	return Split{
		Heading: SplitHeading,
		Title:   SplitTitle,
		Slices: []Slice{
			{Label: "Correct", Value: s.Correct, Color: ColorCorrect},
			{Label: "Incorrect", Value: s.Incorrect(), Color: ColorIncorrect},
		},
	}
}

// Total sums the slice values.
func (s Split) Total() int {
	var n int
	for _, sl := range s.Slices {
		n += sl.Value
	}
	return n
}
