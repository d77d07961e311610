package fixture

import "context"

// InsightLimit caps how many visible fixtures get an insight call per view.
const InsightLimit = 10

// PendingInsight is returned until a prediction engine is connected.
const PendingInsight = "Insight pending: connect LeagueLogic engine endpoint."

// Insighter produces a one-line pre-kickoff note for a fixture.
type Insighter interface {
	Insight(ctx context.Context, f Fixture) (string, error)
}

// InsighterFunc adapts a function to Insighter.
type InsighterFunc func(ctx context.Context, f Fixture) (string, error)

// Insight implements Insighter.
func (fn InsighterFunc) Insight(ctx context.Context, f Fixture) (string, error) {
	return fn(ctx, f)
}

// PendingInsighter is the placeholder Insighter.
type PendingInsighter struct{}

// Insight implements Insighter.
func (PendingInsighter) Insight(context.Context, Fixture) (string, error) {
	return PendingInsight, nil
}
