package fixture

import (
	"slices"
	"strings"
)

// Filter narrows the fixture list. Round 0 matches every round. Query is
// matched case-insensitively against home, away and venue.
type Filter struct {
	Round int    `json:"round"`
	Query string `json:"q"`
}

// Matches reports whether f passes the filter.
func (flt Filter) Matches(f Fixture) bool {
	if flt.Round != 0 && f.Round != flt.Round {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(flt.Query))
	if q == "" {
		return true
	}
	hay := strings.ToLower(f.Home + " " + f.Away + " " + f.Venue)
	return strings.Contains(hay, q)
}

// Apply returns the matching fixtures sorted by kickoff. The input is not
// modified.
func (flt Filter) Apply(fixtures []Fixture) []Fixture {
	out := make([]Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if flt.Matches(f) {
			out = append(out, f)
		}
	}
	slices.SortStableFunc(out, func(a, b Fixture) int {
		return a.Kickoff.Compare(b.Kickoff)
	})
	return out
}
