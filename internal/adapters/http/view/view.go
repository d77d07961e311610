// Package view holds the server-rendered pages. Components live in .templ
// files; the matching _templ.go files are generated from them.
package view

//go:generate templ generate

import (
	"github.com/okian/leaguelogic/internal/domain/fixture"
	"github.com/okian/leaguelogic/internal/domain/summary"
)

// Page carries the copy shared by every page.
type Page struct {
	PageTitle string
	Title     string
	Tagline   string
}

// Section is one chart under its heading. Doc is a complete HTML document.
type Section struct {
	ID      string
	Heading string
	Doc     []byte
}

// DashboardData is what the dashboard page shows, in display order.
type DashboardData struct {
	Tiles    []summary.Tile
	Sections []Section
}

// FixturesData is what the fixtures page shows.
type FixturesData struct {
	Filter        fixture.Filter
	Cards         []fixture.Card
	Rounds        int
	WindowMinutes int
}
