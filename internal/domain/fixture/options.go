package fixture

import (
	"time"

	"github.com/okian/leaguelogic/pkg/logger"
)

// Option applies a configuration option to the Board.
type Option func(*Board)

// WithTiming sets the match-length model.
func WithTiming(t Timing) Option {
	return func(b *Board) {
		if t.Total() > 0 {
			b.timing = t
		}
	}
}

// WithLocation sets the display zone.
func WithLocation(loc *time.Location) Option {
	return func(b *Board) {
		if loc != nil {
			b.location = loc
		}
	}
}

// WithInsighter sets the insight provider.
func WithInsighter(in Insighter) Option {
	return func(b *Board) {
		if in != nil {
			b.insighter = in
		}
	}
}

// WithClock sets the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		if now != nil {
			b.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}
