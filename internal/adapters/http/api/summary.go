package api

import (
	"net/http"
	"time"

	"github.com/okian/leaguelogic/internal/domain/plot"
	"github.com/okian/leaguelogic/internal/domain/summary"
	"github.com/okian/leaguelogic/pkg/logger"
)

// SummaryResponse is the JSON form of one dashboard pass.
type SummaryResponse struct {
	Source        string         `json:"source"`
	Tiles         []summary.Tile `json:"tiles"`
	Correct       int            `json:"correct"`
	Incorrect     int            `json:"incorrect"`
	Total         int            `json:"total"`
	AvgConfidence *float64       `json:"avg_confidence"`
	ROI           string         `json:"roi"`
	Charts        plot.Set       `json:"charts"`
	Tips          []TipRow       `json:"tips"`
	ComputedAt    string         `json:"computed_at"`
	DurationMs    int64          `json:"duration_ms"`
}

// TipRow is one tip log entry in sheet order. Index starts at 1.
type TipRow struct {
	Index      int      `json:"index"`
	Outcome    int      `json:"outcome"`
	Confidence *float64 `json:"confidence"`
	ROI        string   `json:"roi"`
}

// SummaryHandler serves the aggregates and chart series as JSON.
type SummaryHandler struct {
	deps Dependencies
	log  logger.Logger
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps Dependencies, log logger.Logger) *SummaryHandler {
	return &SummaryHandler{deps: deps, log: log}
}

// HandleSummary handles GET /api/summary requests.
func (h *SummaryHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	snap, err := h.deps.Compute(r.Context())
	if err != nil {
		err = Wrap("summary", err)
		status, code := statusFor(err)
		h.log.Warn(r.Context(), "summary failed",
			logger.String("code", code),
			logger.String("request_id", logger.RequestID(r.Context())),
			logger.Error(err))
		writeError(w, status, code, err)
		return
	}

	writeJSON(w, http.StatusOK, newSummaryResponse(snap))
}

func newSummaryResponse(snap *Snapshot) SummaryResponse {
	s := snap.Summary
	resp := SummaryResponse{
		Source:     snap.Source,
		Tiles:      s.Tiles(),
		Correct:    s.Correct,
		Incorrect:  s.Incorrect(),
		Total:      s.Total,
		ROI:        s.ROI.StringFixed(2),
		Charts:     snap.Charts,
		Tips:       make([]TipRow, len(snap.Tips)),
		ComputedAt: snap.At.UTC().Format(time.RFC3339),
		DurationMs: snap.Duration.Milliseconds(),
	}
	for i, t := range snap.Tips {
		row := TipRow{Index: i + 1, Outcome: t.Outcome(), ROI: t.ROI.StringFixed(2)}
		if t.HasConfidence {
			c := t.Confidence
			row.Confidence = &c
		}
		resp.Tips[i] = row
	}
	if s.HasAvgConfidence {
		avg := s.AvgConfidence
		resp.AvgConfidence = &avg
	}
	return resp
}
