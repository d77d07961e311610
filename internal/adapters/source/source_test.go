package source_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/api/option"

	"github.com/okian/leaguelogic/internal/adapters/source"
	"github.com/okian/leaguelogic/internal/domain/fault"
	"github.com/okian/leaguelogic/internal/domain/model"
	"github.com/okian/leaguelogic/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(logger.WithWriter(io.Discard)); err != nil {
		panic(err)
	}
}

func TestDocumentID(t *testing.T) {
	Convey("Given document references", t, func() {
		Convey("When a full URL is supplied", func() {
			id, err := source.DocumentID("https://docs.google.com/spreadsheets/d/1AbC-d_9/edit#gid=0")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "1AbC-d_9")
		})

		Convey("When a bare id is supplied", func() {
			id, err := source.DocumentID(" 1AbC-d_9 ")
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "1AbC-d_9")
		})

		Convey("When the URL has no spreadsheet id", func() {
			_, err := source.DocumentID("https://example.com/sheet")
			So(errors.Is(err, fault.ErrConfiguration), ShouldBeTrue)
			So(errors.Is(err, source.ErrBadReference), ShouldBeTrue)
		})

		Convey("When the reference is empty", func() {
			_, err := source.DocumentID("")
			So(errors.Is(err, fault.ErrConfiguration), ShouldBeTrue)
		})
	})
}

func TestToRecords(t *testing.T) {
	Convey("Given a table with a header and a short row", t, func() {
		table := [][]any{
			{"Outcome Score (1/0)", "Confidence %", "ROI per tip"},
			{1.0, 80.0, 10.0},
			{0.0},
		}

		Convey("Then rows are keyed by header and padded with blanks", func() {
			rows, err := source.ToRecords(table)
			So(err, ShouldBeNil)
			So(rows, ShouldResemble, []model.Row{
				{"Outcome Score (1/0)": 1.0, "Confidence %": 80.0, "ROI per tip": 10.0},
				{"Outcome Score (1/0)": 0.0, "Confidence %": "", "ROI per tip": ""},
			})
		})
	})

	Convey("Given a header-only table", t, func() {
		rows, err := source.ToRecords([][]any{{"a", "b"}})
		So(err, ShouldBeNil)
		So(rows, ShouldBeEmpty)
		rows, err = source.ToRecords(nil)
		So(err, ShouldBeNil)
		So(rows, ShouldBeEmpty)
	})

	Convey("Given a header that repeats the ROI column", t, func() {
		table := [][]any{
			{"Outcome Score (1/0)", "Confidence %", "ROI per tip", "ROI per tip"},
			{1.0, 80.0, 10.0, -999.0},
		}

		Convey("Then the table is rejected instead of keeping the rightmost cell", func() {
			rows, err := source.ToRecords(table)
			So(rows, ShouldBeNil)
			So(errors.Is(err, fault.ErrDataShape), ShouldBeTrue)
			var shape *fault.DataShapeError
			So(errors.As(err, &shape), ShouldBeTrue)
			So(shape.Column, ShouldEqual, "ROI per tip")
		})
	})

	Convey("Given a header with blank spacer columns", t, func() {
		table := [][]any{
			{"Outcome Score (1/0)", "", "Confidence %", " ", "ROI per tip"},
			{1.0, "note", 80.0, "x", 10.0},
		}

		Convey("Then blank columns are ignored", func() {
			rows, err := source.ToRecords(table)
			So(err, ShouldBeNil)
			So(rows, ShouldResemble, []model.Row{
				{"Outcome Score (1/0)": 1.0, "Confidence %": 80.0, "ROI per tip": 10.0},
			})
		})
	})
}

func fakeSheets(t *testing.T, status int, body any) (*httptest.Server, *string) {
	t.Helper()
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Path + "?" + r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func clientOpts(srv *httptest.Server) []option.ClientOption {
	return []option.ClientOption{option.WithEndpoint(srv.URL + "/"), option.WithoutAuthentication()}
}

func TestSheetsRecords(t *testing.T) {
	ctx := context.Background()

	Convey("Given a Sheets API serving a tip log", t, func() {
		srv, seen := fakeSheets(t, http.StatusOK, map[string]any{
			"range":          "'Tips'!A1:C3",
			"majorDimension": "ROWS",
			"values": [][]any{
				{"Outcome Score (1/0)", "Confidence %", "ROI per tip"},
				{1, 80, 10},
				{0, 65, -5},
			},
		})
		src, err := source.NewSheets("https://docs.google.com/spreadsheets/d/abc123/edit", "Tips", "", clientOpts(srv)...)
		So(err, ShouldBeNil)
		So(src.Name(), ShouldEqual, source.KindSheets)

		Convey("When reading records", func() {
			rows, err := src.Records(ctx)

			Convey("Then the worksheet is read unformatted and keyed by header", func() {
				So(err, ShouldBeNil)
				So(len(rows), ShouldEqual, 2)
				So(rows[0]["Outcome Score (1/0)"], ShouldEqual, 1.0)
				So(rows[1]["ROI per tip"], ShouldEqual, -5.0)
				So(*seen, ShouldContainSubstring, "/v4/spreadsheets/abc123/values/")
				So(*seen, ShouldContainSubstring, "valueRenderOption=UNFORMATTED_VALUE")
			})
		})
	})

	Convey("Given a spreadsheet that does not exist", t, func() {
		srv, _ := fakeSheets(t, http.StatusNotFound, map[string]any{
			"error": map[string]any{"code": 404, "message": "Requested entity was not found.", "status": "NOT_FOUND"},
		})
		src, err := source.NewSheets("missing", "Tips", "", clientOpts(srv)...)
		So(err, ShouldBeNil)

		Convey("Then the failure is a configuration error", func() {
			_, err := src.Records(ctx)
			var cfg *fault.ConfigurationError
			So(errors.As(err, &cfg), ShouldBeTrue)
			So(cfg.Option, ShouldEqual, "source.document_reference")
		})
	})

	Convey("Given a spreadsheet the service account cannot read", t, func() {
		srv, _ := fakeSheets(t, http.StatusForbidden, map[string]any{
			"error": map[string]any{"code": 403, "message": "The caller does not have permission", "status": "PERMISSION_DENIED"},
		})
		src, _ := source.NewSheets("abc123", "Tips", "", clientOpts(srv)...)

		Convey("Then the credentials option is blamed", func() {
			_, err := src.Records(ctx)
			var cfg *fault.ConfigurationError
			So(errors.As(err, &cfg), ShouldBeTrue)
			So(cfg.Option, ShouldEqual, "source.credentials_source")
			So(fault.Kind(err), ShouldEqual, fault.KindConfiguration)
		})
	})

	Convey("Given a worksheet whose header repeats a column", t, func() {
		srv, _ := fakeSheets(t, http.StatusOK, map[string]any{
			"range":          "'Tips'!A1:D2",
			"majorDimension": "ROWS",
			"values": [][]any{
				{"Outcome Score (1/0)", "Confidence %", "ROI per tip", "ROI per tip"},
				{1, 80, 10, -999},
			},
		})
		src, _ := source.NewSheets("abc123", "Tips", "", clientOpts(srv)...)

		Convey("Then reading fails with a data shape error", func() {
			_, err := src.Records(ctx)
			So(errors.Is(err, fault.ErrDataShape), ShouldBeTrue)
			So(fault.Kind(err), ShouldEqual, fault.KindDataShape)
		})
	})

	Convey("Given a worksheet name the API rejects", t, func() {
		srv, _ := fakeSheets(t, http.StatusBadRequest, map[string]any{
			"error": map[string]any{"code": 400, "message": "Unable to parse range: 'Nope'", "status": "INVALID_ARGUMENT"},
		})
		src, _ := source.NewSheets("abc123", "Nope", "", clientOpts(srv)...)

		Convey("Then the worksheet option is blamed", func() {
			_, err := src.Records(ctx)
			var cfg *fault.ConfigurationError
			So(errors.As(err, &cfg), ShouldBeTrue)
			So(cfg.Option, ShouldEqual, "source.worksheet_name")
		})
	})

	Convey("Given the API is failing", t, func() {
		srv, _ := fakeSheets(t, http.StatusInternalServerError, map[string]any{
			"error": map[string]any{"code": 500, "message": "backend error", "status": "INTERNAL"},
		})
		src, _ := source.NewSheets("abc123", "Tips", "", clientOpts(srv)...)

		Convey("Then the error is an upstream failure", func() {
			_, err := src.Records(ctx)
			So(err, ShouldNotBeNil)
			So(fault.Kind(err), ShouldEqual, fault.KindUpstream)
		})
	})

	Convey("Given a credentials file that does not exist", t, func() {
		src, err := source.NewSheets("abc123", "Tips", filepath.Join(t.TempDir(), "secrets.json"))
		So(err, ShouldBeNil)

		Convey("Then authentication fails as a configuration error", func() {
			_, err := src.Records(ctx)
			So(errors.Is(err, fault.ErrConfiguration), ShouldBeTrue)
			So(errors.Is(err, source.ErrMissingCredentials), ShouldBeTrue)
		})
	})

	Convey("Given no worksheet name", t, func() {
		_, err := source.NewSheets("abc123", " ", "secrets.json")
		So(errors.Is(err, source.ErrMissingWorksheet), ShouldBeTrue)
	})
}

func TestSQLiteRecords(t *testing.T) {
	ctx := context.Background()

	Convey("Given a SQLite export of the tip log", t, func() {
		path := filepath.Join(t.TempDir(), "tips.db")
		db, err := sql.Open("sqlite", path)
		So(err, ShouldBeNil)
		_, err = db.Exec(`CREATE TABLE "Tips" ("Outcome Score (1/0)" INTEGER, "Confidence %" REAL, "ROI per tip" TEXT)`)
		So(err, ShouldBeNil)
		_, err = db.Exec(`INSERT INTO "Tips" VALUES (1, 80, '10.0'), (0, NULL, '-5.0'), (1, 90, '2.5')`)
		So(err, ShouldBeNil)
		So(db.Close(), ShouldBeNil)

		Convey("When reading the table named after the worksheet", func() {
			src, err := source.NewSQLite(path, "Tips")
			So(err, ShouldBeNil)
			rows, err := src.Records(ctx)

			Convey("Then rows come back in insertion order and parse as tips", func() {
				So(err, ShouldBeNil)
				So(len(rows), ShouldEqual, 3)
				tips, err := model.ParseTips(rows, model.DefaultColumns())
				So(err, ShouldBeNil)
				So(tips[0].Correct, ShouldBeTrue)
				So(tips[1].HasConfidence, ShouldBeFalse)
				So(tips[2].ROI.StringFixed(2), ShouldEqual, "2.50")
			})
		})

		Convey("When the table does not exist", func() {
			src, _ := source.NewSQLite(path, "Missing")
			_, err := src.Records(ctx)
			So(errors.Is(err, fault.ErrConfiguration), ShouldBeTrue)
		})
	})

	Convey("Given a database path that does not exist", t, func() {
		src, err := source.NewSQLite(filepath.Join(t.TempDir(), "none.db"), "Tips")
		So(err, ShouldBeNil)
		_, err = src.Records(ctx)
		So(errors.Is(err, source.ErrMissingDatabase), ShouldBeTrue)
	})
}

func TestOpen(t *testing.T) {
	Convey("Given source settings", t, func() {
		Convey("Then the demo source parses cleanly", func() {
			src, err := source.Open(source.Settings{Kind: source.KindDemo})
			So(err, ShouldBeNil)
			rows, err := src.Records(context.Background())
			So(err, ShouldBeNil)
			tips, err := model.ParseTips(rows, model.DefaultColumns())
			So(err, ShouldBeNil)
			So(len(tips), ShouldEqual, 10)
		})

		Convey("Then the sqlite kind is selected by name", func() {
			src, err := source.Open(source.Settings{Kind: source.KindSQLite, SQLitePath: "x.db", WorksheetName: "Tips"})
			So(err, ShouldBeNil)
			So(src.Name(), ShouldEqual, source.KindSQLite)
		})

		Convey("Then an unknown kind is a configuration error", func() {
			_, err := source.Open(source.Settings{Kind: "ftp"})
			So(errors.Is(err, fault.ErrConfiguration), ShouldBeTrue)
			So(strings.Contains(err.Error(), "source.kind"), ShouldBeTrue)
		})
	})
}
