package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/okian/leaguelogic/internal/domain/fault"
)

// Confidence bounds, in percent.
const (
	minConfidence = 0
	maxConfidence = 100
)

// ParseTips converts source rows into typed tips, validating every cell once.
// Row order is preserved. An empty log, a missing column or a malformed cell
// yields a *fault.DataShapeError naming the offending row and column.
func ParseTips(rows []Row, cols Columns) ([]Tip, error) {
	if len(rows) == 0 {
		return nil, fault.DataShape("", "no tips recorded")
	}
	for _, name := range cols.Names() {
		if _, ok := rows[0][name]; !ok {
			return nil, fault.DataShape(name, "missing required column")
		}
	}

	tips := make([]Tip, 0, len(rows))
	for i, row := range rows {
		tip, err := parseTip(i+1, row, cols)
		if err != nil {
			return nil, err
		}
		tips = append(tips, tip)
	}
	return tips, nil
}

func parseTip(n int, row Row, cols Columns) (Tip, error) {
	var tip Tip

	outcome, ok, err := number(row[cols.Outcome], "")
	switch {
	case err != nil:
		return Tip{}, cellError(n, cols.Outcome, row[cols.Outcome], "not numeric")
	case !ok:
		return Tip{}, cellError(n, cols.Outcome, nil, "outcome score is required")
	case outcome != 0 && outcome != 1:
		return Tip{}, cellError(n, cols.Outcome, row[cols.Outcome], "outcome score must be 1 or 0")
	}
	tip.Correct = outcome == 1

	confidence, ok, err := number(row[cols.Confidence], "%")
	switch {
	case err != nil:
		return Tip{}, cellError(n, cols.Confidence, row[cols.Confidence], "not numeric")
	case ok && (confidence < minConfidence || confidence > maxConfidence):
		return Tip{}, cellError(n, cols.Confidence, row[cols.Confidence], "confidence must be between 0 and 100")
	}
	tip.Confidence, tip.HasConfidence = confidence, ok

	roi, ok, err := money(row[cols.ROI])
	switch {
	case err != nil:
		return Tip{}, cellError(n, cols.ROI, row[cols.ROI], "not a dollar amount")
	case !ok:
		return Tip{}, cellError(n, cols.ROI, nil, "ROI is required")
	}
	tip.ROI = roi

	return tip, nil
}

func cellError(row int, column string, value any, reason string) *fault.DataShapeError {
	return &fault.DataShapeError{Row: row, Column: column, Value: value, Reason: reason}
}

// number reads a numeric cell. ok is false for blank cells. suffix, when set,
// is stripped from string values first (e.g. "85%").
func number(v any, suffix string) (float64, bool, error) {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0, false, nil
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case bool:
		if x {
			f = 1
		}
	case []byte:
		return number(string(x), suffix)
	case string:
		s := strings.TrimSpace(x)
		if suffix != "" {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
		}
		if s == "" {
			return 0, false, nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false, err
		}
		f = parsed
	default:
		return 0, false, fmt.Errorf("unsupported cell type %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, fmt.Errorf("non-finite value %v", f)
	}
	return f, true, nil
}

// money reads a dollar cell exactly. Strings may carry a "$" sign, thousands
// separators and a leading sign on either side of the "$".
func money(v any) (decimal.Decimal, bool, error) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, false, nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, false, fmt.Errorf("non-finite value %v", x)
		}
		return decimal.NewFromFloat(x), true, nil
	case float32:
		return money(float64(x))
	case int:
		return decimal.NewFromInt(int64(x)), true, nil
	case int64:
		return decimal.NewFromInt(x), true, nil
	case []byte:
		return money(string(x))
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return decimal.Zero, false, nil
		}
		s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false, err
		}
		return d, true, nil
	default:
		return decimal.Zero, false, fmt.Errorf("unsupported cell type %T", v)
	}
}
