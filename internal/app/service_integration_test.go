package service_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/okian/leaguelogic/internal/adapters/source"
	service "github.com/okian/leaguelogic/internal/app"
	"github.com/okian/leaguelogic/internal/domain/plot"
	. "github.com/smartystreets/goconvey/convey"
)

func TestServiceIntegration(t *testing.T) {
	Convey("Given a service over the demo log", t, func() {
		src, err := source.Open(source.Settings{Kind: source.KindDemo})
		So(err, ShouldBeNil)
		svc := service.New(service.WithSource(src))
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When rendering end-to-end", func() {
			snap, err := svc.Render(ctx)

			Convey("Then the tiles and charts agree", func() {
				So(err, ShouldBeNil)
				So(snap.Summary.Total, ShouldEqual, 10)
				So(snap.Summary.Correct, ShouldEqual, 7)
				So(snap.Summary.ROIText(), ShouldEqual, "$59.75")
				So(snap.Charts.Split.Total(), ShouldEqual, snap.Summary.Total)
				So(string(snap.Rendered.Accuracy), ShouldContainSubstring, plot.AccuracyTitle)
			})
		})

		Convey("When rendering concurrently", func() {
			var wg sync.WaitGroup
			errs := make(chan error, 16)
			for i := 0; i < 16; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					if _, err := svc.Compute(ctx); err != nil {
						errs <- err
					}
				}()
			}
			wg.Wait()
			close(errs)

			Convey("Then every pass succeeds independently", func() {
				So(len(errs), ShouldEqual, 0)
				So(svc.GetStats()["renders"], ShouldEqual, int64(16))
			})
		})
	})

	Convey("Given a service over a SQLite export", t, func() {
		path := filepath.Join(t.TempDir(), "tips.db")
		db, err := sql.Open("sqlite", path)
		So(err, ShouldBeNil)
		_, err = db.Exec(`CREATE TABLE "Charts Helper" ("Outcome Score (1/0)" INTEGER, "Confidence %" REAL, "ROI per tip" REAL)`)
		So(err, ShouldBeNil)
		_, err = db.Exec(`INSERT INTO "Charts Helper" VALUES (1, 80, 10.0), (0, 70, -5.0), (1, 90, 2.5)`)
		So(err, ShouldBeNil)
		So(db.Close(), ShouldBeNil)

		src, err := source.Open(source.Settings{Kind: source.KindSQLite, SQLitePath: path, WorksheetName: "Charts Helper"})
		So(err, ShouldBeNil)
		svc := service.New(service.WithSource(src))

		Convey("Then the figures match the hand-computed ones", func() {
			snap, err := svc.Compute(context.Background())
			So(err, ShouldBeNil)
			So(snap.Summary.Correct, ShouldEqual, 2)
			So(snap.Summary.Total, ShouldEqual, 3)
			So(snap.Summary.ConfidenceText(), ShouldEqual, "85.0%")
			So(snap.Summary.ROIText(), ShouldEqual, "$7.50")
		})
	})
}
