package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/okian/leaguelogic/internal/adapters/http/view"
	"github.com/okian/leaguelogic/internal/domain/fixture"
)

const maxQueryLen = 100

// FixturesResponse is the JSON form of the fixture board.
type FixturesResponse struct {
	Filter        fixture.Filter `json:"filter"`
	Timezone      string         `json:"timezone"`
	WindowMinutes int            `json:"window_minutes"`
	Fixtures      []fixture.Card `json:"fixtures"`
}

// FixturesHandler serves the season fixtures page and its JSON twin.
type FixturesHandler struct {
	deps Dependencies
	page view.Page
}

// NewFixturesHandler creates a new fixtures handler.
func NewFixturesHandler(deps Dependencies, page view.Page) *FixturesHandler {
	return &FixturesHandler{deps: deps, page: page}
}

// HandleFixturesPage handles GET /fixtures requests.
func (h *FixturesHandler) HandleFixturesPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	flt, err := parseFilter(r)
	if err != nil {
		page := view.ErrorPage(h.page, "Invalid filter", err.Error())
		templ.Handler(page, templ.WithStatus(http.StatusBadRequest)).ServeHTTP(w, r)
		return
	}
	data := view.FixturesData{
		Filter:        flt,
		Cards:         h.deps.Fixtures(r.Context(), flt),
		Rounds:        fixture.SeasonRounds,
		WindowMinutes: int(h.deps.FixtureBoard().Timing().Total().Minutes()),
	}
	templ.Handler(view.Fixtures(h.page, data)).ServeHTTP(w, r)
}

// HandleFixtures handles GET /api/fixtures requests.
func (h *FixturesHandler) HandleFixtures(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	flt, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	board := h.deps.FixtureBoard()
	writeJSON(w, http.StatusOK, FixturesResponse{
		Filter:        flt,
		Timezone:      board.Location().String(),
		WindowMinutes: int(board.Timing().Total().Minutes()),
		Fixtures:      h.deps.Fixtures(r.Context(), flt),
	})
}

// parseFilter reads round and q. An absent or zero round means every round.
func parseFilter(r *http.Request) (fixture.Filter, error) {
	q := r.URL.Query()
	flt := fixture.Filter{Query: strings.TrimSpace(q.Get("q"))}
	if len(flt.Query) > maxQueryLen {
		return fixture.Filter{}, Wrap("parse filter", NewKind("q too long", ErrBadRequest))
	}
	if raw := q.Get("round"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > fixture.SeasonRounds {
			return fixture.Filter{}, Wrap("parse filter", NewKind("round must be 0-"+strconv.Itoa(fixture.SeasonRounds), ErrBadRequest))
		}
		flt.Round = n
	}
	return flt, nil
}
