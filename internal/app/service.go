// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/leaguelogic/internal/adapters/echarts"
	"github.com/okian/leaguelogic/internal/adapters/source"
	"github.com/okian/leaguelogic/internal/domain/fault"
	"github.com/okian/leaguelogic/internal/domain/fixture"
	"github.com/okian/leaguelogic/internal/domain/model"
	"github.com/okian/leaguelogic/internal/domain/plot"
	"github.com/okian/leaguelogic/internal/domain/summary"
	"github.com/okian/leaguelogic/pkg/logger"
	"github.com/okian/leaguelogic/pkg/metrics"
)

// Snapshot is the outcome of one pass over the tip log.
type Snapshot struct {
	Source   string
	Tips     []model.Tip
	Summary  summary.Summary
	Charts   plot.Set
	Rendered echarts.Rendered // empty unless produced by Render

	At       time.Time
	Duration time.Duration
}

// Service implements the API dependencies for the dashboard. It holds no
// per-render state: every call reads the source afresh.
type Service struct {
	mu sync.RWMutex

	// Collaborators
	source   source.Source
	renderer *echarts.Renderer
	board    *fixture.Board

	// Configuration
	columns       model.Columns
	renderTimeout time.Duration

	// State
	started  bool
	renders  atomic.Int64
	failures atomic.Int64
	lastAt   atomic.Int64 // unix nanos of the last completed pass
	lastKind atomic.Value // fault kind of the last pass

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the tip log source.
func WithSource(src source.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithColumns sets the tip log headers.
func WithColumns(cols model.Columns) Option {
	return func(s *Service) {
		s.columns = cols
	}
}

// WithChartRenderer sets the chart renderer.
func WithChartRenderer(r *echarts.Renderer) Option {
	return func(s *Service) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithFixtures sets the fixtures board.
func WithFixtures(b *fixture.Board) Option {
	return func(s *Service) {
		if b != nil {
			s.board = b
		}
	}
}

// WithRenderTimeout bounds a single pass, fetch included.
func WithRenderTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.renderTimeout = d
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		columns:       model.DefaultColumns(),
		renderTimeout: 15 * time.Second,
	}
	s.lastKind.Store("")

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.renderer == nil {
		s.renderer = echarts.New()
	}
	if s.board == nil {
		s.board = fixture.NewBoard(fixture.Demo(), fixture.WithLogger(s.logger))
	}
	return s
}

// Start checks the collaborators and marks the service ready.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.source == nil {
		return ErrNoSource
	}

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.String("source", s.source.Name()),
		logger.Duration("renderTimeout", s.renderTimeout),
	)
	return nil
}

// Stop marks the service stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// Compute runs fetch, parse, aggregate and chart-data for one request.
func (s *Service) Compute(ctx context.Context) (*Snapshot, error) {
	return s.pass(ctx, false)
}

// Render is Compute plus the interactive chart documents.
func (s *Service) Render(ctx context.Context) (*Snapshot, error) {
	return s.pass(ctx, true)
}

func (s *Service) pass(ctx context.Context, withCharts bool) (*Snapshot, error) {
	start := time.Now()
	snap, err := s.run(ctx, withCharts)
	elapsed := time.Since(start)

	kind := fault.Kind(err)
	s.renders.Add(1)
	s.lastAt.Store(start.UnixNano())
	s.lastKind.Store(kind)
	metrics.RecordRender(kind, float64(elapsed.Milliseconds()))

	if err != nil {
		s.failures.Add(1)
		metrics.RecordErrorByType(kind, "error")
		s.logger.Error(ctx, "dashboard render failed",
			logger.String("kind", kind),
			logger.Duration("elapsed", elapsed),
			logger.Error(err),
		)
		return nil, err
	}

	snap.At, snap.Duration = start, elapsed
	s.logger.Debug(ctx, "dashboard rendered",
		logger.Int("tips", snap.Summary.Total),
		logger.Duration("elapsed", elapsed),
	)
	return snap, nil
}

func (s *Service) run(ctx context.Context, withCharts bool) (*Snapshot, error) {
	if s.source == nil {
		return nil, ErrNoSource
	}
	ctx, cancel := context.WithTimeout(ctx, s.renderTimeout)
	defer cancel()

	fetchStart := time.Now()
	rows, err := s.source.Records(ctx)
	metrics.RecordSourceFetch(s.source.Name(), float64(time.Since(fetchStart).Milliseconds()))
	if err != nil {
		return nil, err
	}
	metrics.UpdateSourceRowsLoaded(len(rows))

	tips, err := model.ParseTips(rows, s.columns)
	if err != nil {
		return nil, err
	}

	sum := summary.Compute(tips)
	roi, _ := sum.ROI.Float64()
	metrics.UpdateTipAggregates(sum.Correct, sum.Total, roi)

	snap := &Snapshot{
		Source:  s.source.Name(),
		Tips:    tips,
		Summary: sum,
		Charts:  plot.Build(tips),
	}
	if withCharts {
		if snap.Rendered, err = s.renderer.Render(snap.Charts); err != nil {
			return nil, err
		}
	}
	return snap, nil
}

// Fixtures returns fixture cards for the filter at the current instant.
func (s *Service) Fixtures(ctx context.Context, flt fixture.Filter) []fixture.Card {
	return s.board.Cards(ctx, flt)
}

// FixtureBoard exposes the board for callers that need its timing or zone.
func (s *Service) FixtureBoard() *fixture.Board { return s.board }

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"renders":         s.renders.Load(),
		"renderFailures":  s.failures.Load(),
		"renderTimeoutMs": s.renderTimeout.Milliseconds(),
		"lastResult":      s.lastKind.Load(),
	}
	if s.source != nil {
		stats["source"] = s.source.Name()
	}
	if at := s.lastAt.Load(); at != 0 {
		stats["lastRenderAt"] = time.Unix(0, at).UTC().Format(time.RFC3339)
	}
	return stats
}
