package source

import (
	"context"

	"github.com/okian/leaguelogic/internal/domain/model"
)

// demoLog is a short season sample in the shape the Sheets API returns
// unformatted values: numbers as float64, blanks as "".
var demoLog = [][]any{
	{"Round", "Match", "Tip", "Outcome Score (1/0)", "Confidence %", "ROI per tip"},
	{1.0, "Broncos v Cowboys", "Broncos", 1.0, 72.0, 18.5},
	{1.0, "Rabbitohs v Roosters", "Roosters", 0.0, 61.0, -10.0},
	{2.0, "Storm v Panthers", "Storm", 1.0, 68.0, 14.0},
	{2.0, "Eels v Dragons", "Eels", 1.0, 55.0, 9.5},
	{3.0, "Sharks v Titans", "Sharks", 0.0, 74.0, -10.0},
	{3.0, "Knights v Warriors", "Warriors", 1.0, "", 22.0},
	{4.0, "Raiders v Bulldogs", "Raiders", 1.0, 80.0, 6.5},
	{4.0, "Sea Eagles v Tigers", "Sea Eagles", 0.0, 58.0, -10.0},
	{5.0, "Dolphins v Cowboys", "Dolphins", 1.0, 66.0, 12.0},
	{5.0, "Roosters v Sharks", "Roosters", 1.0, 77.0, 7.25},
}

// Demo serves a built-in sample log so the dashboard runs without credentials.
type Demo struct{}

// NewDemo returns the demo source.
func NewDemo() *Demo { return &Demo{} }

// Name implements Source.
func (*Demo) Name() string { return KindDemo }

// Records implements Source.
func (*Demo) Records(ctx context.Context) ([]model.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ToRecords(demoLog)
}
