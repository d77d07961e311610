package fixture

import (
	"fmt"
	"math"
	"time"
)

// Default timing model, in minutes.
const (
	DefaultBaseMatchMinutes = 80
	DefaultHalftimeMinutes  = 10
	DefaultPaddingMinutes   = 20
)

// Timing is the match-length model used to estimate finish times.
type Timing struct {
	BaseMatch time.Duration // clocked play
	Halftime  time.Duration
	Padding   time.Duration // stoppages, reviews, presentations
}

// DefaultTiming is 80 + 10 + 20 minutes.
func DefaultTiming() Timing {
	return Timing{
		BaseMatch: DefaultBaseMatchMinutes * time.Minute,
		Halftime:  DefaultHalftimeMinutes * time.Minute,
		Padding:   DefaultPaddingMinutes * time.Minute,
	}
}

// Total is the full estimated window from kickoff to finish.
func (t Timing) Total() time.Duration {
	return t.BaseMatch + t.Halftime + t.Padding
}

// EstimateFinish returns kickoff plus the total window.
func (t Timing) EstimateFinish(kickoff time.Time) time.Time {
	return kickoff.Add(t.Total())
}

// State is the lifecycle stage of a fixture at a given instant.
type State string

// Fixture states.
const (
	Upcoming      State = "Upcoming"
	Live          State = "Live"
	AwaitingFinal State = "Awaiting final"
	Final         State = "Final"
)

// Status is a fixture's state and progress (0-100) at one instant.
type Status struct {
	State    State `json:"state"`
	Progress int   `json:"progress"`
}

// StatusAt computes the status of f at now.
func (t Timing) StatusAt(f Fixture, now time.Time) Status {
	finish := t.EstimateFinish(f.Kickoff)
	switch {
	case f.HasResult():
		return Status{State: Final, Progress: 100}
	case !now.Before(finish):
		return Status{State: AwaitingFinal, Progress: 100}
	case now.Before(f.Kickoff):
		return Status{State: Upcoming, Progress: 0}
	}

	total := finish.Sub(f.Kickoff)
	if total <= 0 {
		return Status{State: Live, Progress: 100}
	}
	elapsed := now.Sub(f.Kickoff)
	progress := int(math.Round(float64(elapsed) / float64(total) * 100))
	return Status{State: Live, Progress: clamp(progress, 0, 100)}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// HumanDiff describes a relative to b in whole minutes: "2h 5m from now",
// "45m ago".
func HumanDiff(a, b time.Time) string {
	d := a.Sub(b)
	suffix := "from now"
	if d < 0 {
		suffix = "ago"
		d = -d
	}
	minutes := int(d / time.Minute)
	h, m := minutes/60, minutes%60
	if h > 0 {
		return fmt.Sprintf("%dh %dm %s", h, m, suffix)
	}
	return fmt.Sprintf("%dm %s", m, suffix)
}
