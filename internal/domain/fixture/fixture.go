// Package fixture models the season fixture list: estimated finish times,
// live status and progress, filtering, and per-match insight notes.
package fixture

import (
	"fmt"
	"time"
)

// SeasonRounds is the number of rounds offered by the round filter.
const SeasonRounds = 27

// Fixture is one scheduled match. Scores are set once the result is known.
type Fixture struct {
	ID        string    `yaml:"id" json:"id"`
	Round     int       `yaml:"round" json:"round"`
	Kickoff   time.Time `yaml:"kickoff" json:"kickoff"`
	Venue     string    `yaml:"venue" json:"venue"`
	Home      string    `yaml:"home" json:"home"`
	Away      string    `yaml:"away" json:"away"`
	HomeScore *int      `yaml:"home_score,omitempty" json:"home_score,omitempty"`
	AwayScore *int      `yaml:"away_score,omitempty" json:"away_score,omitempty"`
	Final     bool      `yaml:"final,omitempty" json:"final"`
	HashID    string    `yaml:"hash_id,omitempty" json:"hash_id,omitempty"`
}

// HasResult reports whether the match is marked final and both scores are in.
func (f Fixture) HasResult() bool {
	return f.Final && f.HomeScore != nil && f.AwayScore != nil
}

// Score renders the result as "home-away", or "" without a result.
func (f Fixture) Score() string {
	if !f.HasResult() {
		return ""
	}
	return fmt.Sprintf("%d-%d", *f.HomeScore, *f.AwayScore)
}

// Matchup renders "Home vs Away".
func (f Fixture) Matchup() string {
	return f.Home + " vs " + f.Away
}
