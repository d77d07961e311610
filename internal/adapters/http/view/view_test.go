package view_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/okian/leaguelogic/internal/adapters/http/view"
	"github.com/okian/leaguelogic/internal/domain/fixture"
	"github.com/okian/leaguelogic/internal/domain/summary"
	"github.com/okian/leaguelogic/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(logger.WithWriter(io.Discard)); err != nil {
		panic(err)
	}
}

var page = view.Page{PageTitle: "LeagueLogic", Title: "INVESTOR <DASHBOARD>", Tagline: "Backed by Performance"}

func TestDashboard(t *testing.T) {
	Convey("Given tiles and three chart sections", t, func() {
		data := view.DashboardData{
			Tiles: []summary.Tile{{Label: "Correct Tips", Value: "3"}, {Label: "Simulated ROI ($100)", Value: "$7.50"}},
			Sections: []view.Section{
				{ID: "accuracy", Heading: "Prediction Accuracy Over Time", Doc: []byte(`<html><script>var a = "x";</script></html>`)},
				{ID: "roi", Heading: "ROI Per Tip ($100 Bets)", Doc: []byte("<p>roi</p>")},
				{ID: "split", Heading: "Correct vs Incorrect Tips", Doc: []byte("<p>split</p>")},
			},
		}

		Convey("When rendering", func() {
			var buf bytes.Buffer
			err := view.Dashboard(page, data).Render(context.Background(), &buf)
			html := buf.String()

			Convey("Then title, tiles and sections appear in order", func() {
				So(err, ShouldBeNil)
				title := strings.Index(html, "INVESTOR &lt;DASHBOARD&gt;")
				tiles := strings.Index(html, "Correct Tips")
				divider := strings.Index(html, `<hr class="divider">`)
				acc := strings.Index(html, "Prediction Accuracy Over Time")
				roi := strings.Index(html, "ROI Per Tip ($100 Bets)")
				split := strings.Index(html, "Correct vs Incorrect Tips")
				So(title, ShouldBeGreaterThan, 0)
				So(tiles, ShouldBeGreaterThan, title)
				So(divider, ShouldBeGreaterThan, tiles)
				So(acc, ShouldBeGreaterThan, divider)
				So(roi, ShouldBeGreaterThan, acc)
				So(split, ShouldBeGreaterThan, roi)
				So(html, ShouldContainSubstring, "$7.50")
			})

			Convey("And chart documents are escaped into srcdoc", func() {
				So(html, ShouldContainSubstring, `srcdoc="&lt;html&gt;&lt;script&gt;var a = &#34;x&#34;;`)
				So(html, ShouldNotContainSubstring, `<script>var a`)
			})
		})
	})
}

func TestErrorPage(t *testing.T) {
	Convey("Given an error message with markup", t, func() {
		var buf bytes.Buffer
		err := view.ErrorPage(page, "Data problem", `column "ROI per tip" <missing>`).Render(context.Background(), &buf)

		Convey("Then it is shown escaped", func() {
			So(err, ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "Data problem")
			So(buf.String(), ShouldContainSubstring, "&lt;missing&gt;")
		})
	})
}

func TestFixtures(t *testing.T) {
	Convey("Given fixture cards", t, func() {
		now := time.Date(2025, 3, 6, 10, 10, 0, 0, time.UTC)
		board := fixture.NewBoard(fixture.Demo(), fixture.WithClock(func() time.Time { return now }))
		flt := fixture.Filter{Round: 1, Query: `"rabbit"`}
		data := view.FixturesData{
			Filter:        flt,
			Cards:         board.Cards(context.Background(), fixture.Filter{Round: 1}),
			Rounds:        fixture.SeasonRounds,
			WindowMinutes: 110,
		}

		Convey("When rendering", func() {
			var buf bytes.Buffer
			err := view.Fixtures(page, data).Render(context.Background(), &buf)
			html := buf.String()

			Convey("Then each match is shown with its status and progress", func() {
				So(err, ShouldBeNil)
				So(html, ShouldContainSubstring, "Broncos vs Cowboys")
				So(html, ShouldContainSubstring, "LIVE")
				So(html, ShouldContainSubstring, `<progress class="progress" max="100" value="18">`)
				So(html, ShouldContainSubstring, fixture.PendingInsight)
				So(html, ShouldContainSubstring, "110-minute window")
			})

			Convey("And the fixtures tab is active with one badge per state", func() {
				So(html, ShouldContainSubstring, `<a href="/fixtures" class="active">Fixtures</a>`)
				So(html, ShouldNotContainSubstring, `<a href="/" class="active">`)
				So(html, ShouldContainSubstring, `<i class="dot badge-live"></i>`)
				So(html, ShouldContainSubstring, `<i class="dot badge-awaiting"></i>`)
			})

			Convey("And the filter state is kept", func() {
				So(html, ShouldContainSubstring, `<option value="1" selected>Round 1</option>`)
				So(html, ShouldContainSubstring, `<option value="27">Round 27</option>`)
				So(html, ShouldContainSubstring, `value="&#34;rabbit&#34;"`)
			})
		})
	})

	Convey("Given no cards", t, func() {
		var buf bytes.Buffer
		err := view.Fixtures(page, view.FixturesData{Rounds: 1, WindowMinutes: 110}).Render(context.Background(), &buf)
		So(err, ShouldBeNil)
		So(buf.String(), ShouldContainSubstring, "No fixtures match.")
	})
}
