// Package model contains domain models passed between layers.
package model

import (
	"github.com/shopspring/decimal"
)

// Row is one spreadsheet record keyed by header name, as delivered by a source.
type Row map[string]any

// Tip is one prediction from the tip log.
type Tip struct {
	Correct bool // outcome score 1 (true) or 0 (false)

	// Confidence is the stated confidence in percent, 0-100.
	// HasConfidence is false when the cell was blank.
	Confidence    float64
	HasConfidence bool

	ROI decimal.Decimal // simulated profit/loss in dollars on a fixed stake
}

// Outcome returns the outcome score as recorded in the sheet (1 or 0).
func (t Tip) Outcome() int {
	if t.Correct {
		return 1
	}
	return 0
}

// Columns names the three required headers of the tip log.
type Columns struct {
	Outcome    string
	Confidence string
	ROI        string
}

// DefaultColumns are the headers used by the LeagueLogic prediction log.
func DefaultColumns() Columns {
	return Columns{
		Outcome:    "Outcome Score (1/0)",
		Confidence: "Confidence %",
		ROI:        "ROI per tip",
	}
}

// Names lists the column names in a fixed order.
func (c Columns) Names() []string {
	return []string{c.Outcome, c.Confidence, c.ROI}
}
