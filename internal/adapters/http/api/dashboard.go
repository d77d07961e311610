package api

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/okian/leaguelogic/internal/adapters/http/view"
	"github.com/okian/leaguelogic/internal/domain/plot"
	"github.com/okian/leaguelogic/pkg/logger"
)

// DashboardHandler serves the investor dashboard page.
type DashboardHandler struct {
	deps Dependencies
	page view.Page
	log  logger.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(deps Dependencies, page view.Page, log logger.Logger) *DashboardHandler {
	return &DashboardHandler{deps: deps, page: page, log: log}
}

// HandleDashboard handles GET / requests. Every request reads the tip log
// afresh. A failed pass renders an error page instead of a partial dashboard.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	snap, err := h.deps.Render(r.Context())
	if err != nil {
		err = Wrap("dashboard", err)
		status, code := statusFor(err)
		h.log.Error(r.Context(), "dashboard render failed",
			logger.String("code", code),
			logger.Int("status", status),
			logger.String("request_id", logger.RequestID(r.Context())),
			logger.Error(err))
		page := view.ErrorPage(h.page, headingFor(err), err.Error())
		templ.Handler(page, templ.WithStatus(status)).ServeHTTP(w, r)
		return
	}

	data := view.DashboardData{
		Tiles: snap.Summary.Tiles(),
		Sections: []view.Section{
			{ID: "accuracy", Heading: plot.AccuracyHeading, Doc: snap.Rendered.Accuracy},
			{ID: "roi", Heading: plot.ROIHeading, Doc: snap.Rendered.ROI},
			{ID: "split", Heading: plot.SplitHeading, Doc: snap.Rendered.Split},
		},
	}
	templ.Handler(view.Dashboard(h.page, data)).ServeHTTP(w, r)
}
