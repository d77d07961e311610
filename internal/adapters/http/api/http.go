// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/leaguelogic/internal/adapters/http/view"
	service "github.com/okian/leaguelogic/internal/app"
	"github.com/okian/leaguelogic/internal/domain/fixture"
	"github.com/okian/leaguelogic/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Compute runs one pass over the tip log without chart documents.
	Compute(ctx context.Context) (*Snapshot, error)

	// Render runs one pass and renders the interactive charts.
	Render(ctx context.Context) (*Snapshot, error)

	// Fixtures returns display cards for the filter.
	Fixtures(ctx context.Context, flt fixture.Filter) []fixture.Card

	FixtureBoard() *fixture.Board
}

// Snapshot mirrors the read shape returned by a dashboard pass.
type Snapshot = service.Snapshot

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	dashboardHandler *DashboardHandler
	summaryHandler   *SummaryHandler
	fixturesHandler  *FixturesHandler
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*serverOptions)

type serverOptions struct {
	page   view.Page
	logger logger.Logger
}

// WithPage sets the page copy shared by the HTML views.
func WithPage(p view.Page) ServerOption {
	return func(o *serverOptions) {
		o.page = p
	}
}

// WithLogger sets the logger used by the handlers.
func WithLogger(l logger.Logger) ServerOption {
	return func(o *serverOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	o := serverOptions{
		page:   view.Page{PageTitle: "LeagueLogic", Title: "LeagueLogic"},
		logger: logger.Get(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger.Named("http")
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		dashboardHandler: NewDashboardHandler(deps, o.page, log),
		summaryHandler:   NewSummaryHandler(deps, log),
		fixturesHandler:  NewFixturesHandler(deps, o.page),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.HandleFunc("/{$}", MetricsMiddleware(s.dashboardHandler.HandleDashboard, "dashboard"))
	mux.HandleFunc("/api/summary", MetricsMiddleware(s.summaryHandler.HandleSummary, "summary"))
	mux.HandleFunc("/fixtures", MetricsMiddleware(s.fixturesHandler.HandleFixturesPage, "fixtures"))
	mux.HandleFunc("/api/fixtures", MetricsMiddleware(s.fixturesHandler.HandleFixtures, "api_fixtures"))
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
