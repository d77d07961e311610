// Package summary derives the headline figures of the tip log: correct and
// total counts, average confidence on correct tips, and cumulative ROI.
package summary

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/okian/leaguelogic/internal/domain/model"
)

// NotAvailable is displayed when a figure has no defined value.
const NotAvailable = "N/A"

// Tile labels, in display order.
const (
	LabelCorrect    = "Correct Tips"
	LabelTotal      = "Total Tips"
	LabelConfidence = "Avg Confidence (Correct)"
	LabelROI        = "Simulated ROI ($100)"
)

// Summary holds the aggregates of one tip log.
type Summary struct {
	Correct int
	Total   int

	// AvgConfidence is the mean confidence over correct tips that carry one.
	// HasAvgConfidence is false when no such tip exists.
	AvgConfidence    float64
	HasAvgConfidence bool

	ROI decimal.Decimal
}

// Compute aggregates tips. It never fails: an empty log yields zero counts,
// an undefined average and zero ROI.
func Compute(tips []model.Tip) Summary {
	s := Summary{Total: len(tips), ROI: decimal.Zero}

	var confSum float64
	var confN int
	for _, t := range tips {
		s.ROI = s.ROI.Add(t.ROI)
		if !t.Correct {
			continue
		}
		s.Correct++
		if t.HasConfidence {
			confSum += t.Confidence
			confN++
		}
	}
	if confN > 0 {
		s.AvgConfidence = confSum / float64(confN)
		s.HasAvgConfidence = true
	}
	return s
}

// Incorrect returns total minus correct.
func (s Summary) Incorrect() int { return s.Total - s.Correct }

// ConfidenceText renders the average as "85.0%" or N/A.
func (s Summary) ConfidenceText() string {
	if !s.HasAvgConfidence {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f%%", s.AvgConfidence)
}

// ROIText renders the cumulative ROI as dollars with two decimals. The sign
// goes before the currency symbol: "$7.50", "-$5.00".
func (s Summary) ROIText() string {
	return FormatDollars(s.ROI)
}

// FormatDollars renders d as "$1.00" / "-$1.00". Rounding happens only here.
func FormatDollars(d decimal.Decimal) string {
	r := d.Round(2)
	if r.IsNegative() {
		return "-$" + r.Neg().StringFixed(2)
	}
	return "$" + r.StringFixed(2)
}

// Tile is one labelled figure on the dashboard.
type Tile struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Tiles returns the four dashboard tiles in display order.
func (s Summary) Tiles() []Tile {
	return []Tile{
		{Label: LabelCorrect, Value: fmt.Sprint(s.Correct)},
		{Label: LabelTotal, Value: fmt.Sprint(s.Total)},
		{Label: LabelConfidence, Value: s.ConfidenceText()},
		{Label: LabelROI, Value: s.ROIText()},
	}
}
