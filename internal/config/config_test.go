package config_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/okian/leaguelogic/internal/config"
	"github.com/okian/leaguelogic/internal/domain/fixture"
	"github.com/okian/leaguelogic/internal/domain/model"
	"github.com/okian/leaguelogic/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(logger.WithWriter(io.Discard)); err != nil {
		panic(err)
	}
}

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.RenderTimeout(), convey.ShouldEqual, 15*time.Second)
			convey.So(cfg.Source.Kind, convey.ShouldEqual, "sheets")
			convey.So(cfg.Source.WorksheetName, convey.ShouldEqual, "Charts Helper")
			convey.So(cfg.Source.CredentialsSource, convey.ShouldEqual, "secrets.json")
			convey.So(cfg.ColumnNames(), convey.ShouldResemble, model.DefaultColumns())
			convey.So(cfg.Timing(), convey.ShouldResemble, fixture.DefaultTiming())
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then the source settings mirror the source section", func() {
			s := cfg.SourceSettings()
			convey.So(s.Kind, convey.ShouldEqual, cfg.Source.Kind)
			convey.So(s.DocumentReference, convey.ShouldEqual, cfg.Source.DocumentReference)
			convey.So(s.SQLitePath, convey.ShouldEqual, "leaguelogic.db")
		})

		convey.Convey("Then the display zone is Brisbane", func() {
			loc, err := cfg.Location()
			convey.So(err, convey.ShouldBeNil)
			convey.So(loc.String(), convey.ShouldEqual, "Australia/Brisbane")
		})
	})
}
