package fixture

import (
	"context"
	"time"
	_ "time/tzdata" // zone data for hosts without a system database

	"github.com/okian/leaguelogic/pkg/logger"
)

// DefaultTimezone is where kickoff times are displayed.
const DefaultTimezone = "Australia/Brisbane"

const (
	dateLayout = "Mon, 02 Jan 2006"
	timeLayout = "03:04 pm"
)

// Card is a fixture prepared for display at one instant.
type Card struct {
	Fixture
	Status

	EstimatedFinish time.Time `json:"estimated_finish"`
	KickoffDate     string    `json:"kickoff_date"`
	KickoffTime     string    `json:"kickoff_time"`
	FinishTime      string    `json:"finish_time"`
	Zone            string    `json:"zone"`
	Detail          string    `json:"detail"`
	Insight         string    `json:"insight,omitempty"`
}

// Board turns fixtures into display cards.
type Board struct {
	fixtures  []Fixture
	timing    Timing
	location  *time.Location
	insighter Insighter
	now       func() time.Time
	log       logger.Logger
}

// NewBoard creates a Board over fixtures.
func NewBoard(fixtures []Fixture, opts ...Option) *Board {
	b := &Board{
		fixtures:  fixtures,
		timing:    DefaultTiming(),
		location:  time.UTC,
		insighter: PendingInsighter{},
		now:       time.Now,
		log:       logger.Get(),
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		b.location = loc
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Timing returns the board's match-length model.
func (b *Board) Timing() Timing { return b.timing }

// Location returns the display zone.
func (b *Board) Location() *time.Location { return b.location }

// Cards filters, sorts and decorates fixtures at the current instant. Only
// the first InsightLimit cards get an insight note; a failing insight is
// logged and left blank.
func (b *Board) Cards(ctx context.Context, flt Filter) []Card {
	now := b.now()
	visible := flt.Apply(b.fixtures)

	cards := make([]Card, len(visible))
	for i, f := range visible {
		cards[i] = b.card(f, now)
		if i >= InsightLimit {
			continue
		}
		note, err := b.insighter.Insight(ctx, f)
		if err != nil {
			b.log.Warn(ctx, "fixture insight failed", logger.String("fixture", f.ID), logger.Error(err))
			continue
		}
		cards[i].Insight = note
	}
	return cards
}

func (b *Board) card(f Fixture, now time.Time) Card {
	finish := b.timing.EstimateFinish(f.Kickoff)
	ko := f.Kickoff.In(b.location)
	c := Card{
		Fixture:         f,
		Status:          b.timing.StatusAt(f, now),
		EstimatedFinish: finish,
		KickoffDate:     ko.Format(dateLayout),
		KickoffTime:     ko.Format(timeLayout),
		FinishTime:      finish.In(b.location).Format(timeLayout),
		Zone:            ko.Format("MST"),
	}
	switch c.State {
	case Final:
		c.Detail = f.Score()
	case Upcoming:
		c.Detail = "KO " + HumanDiff(f.Kickoff, now)
	case Live:
		c.Detail = "Est. " + HumanDiff(finish, now)
	default:
		c.Detail = "Final pending"
	}
	return c
}
