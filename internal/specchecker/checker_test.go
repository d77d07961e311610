package specchecker_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/leaguelogic/internal/domain/fault"
	"github.com/okian/leaguelogic/internal/specchecker"
	"github.com/okian/leaguelogic/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(logger.WithWriter(io.Discard)); err != nil {
		panic(err)
	}
}

const minimal = `
openapi: "3.0.0"
info:
  title: x
  version: "1"
paths: {}
`

func TestCheck(t *testing.T) {
	ctx := context.Background()

	Convey("Given the minimal document", t, func() {
		Convey("Then it is accepted", func() {
			So(specchecker.Check(ctx, []byte(minimal)), ShouldBeNil)
		})
	})

	Convey("Given a document with integer response codes", t, func() {
		doc := minimal[:len(minimal)-len("paths: {}\n")] + `paths:
  /ping:
    get:
      responses:
        200:
          description: pong
`
		Convey("Then the keys are normalised and it is accepted", func() {
			So(specchecker.Check(ctx, []byte(doc)), ShouldBeNil)
		})
	})

	Convey("Given a document without info", t, func() {
		err := specchecker.Check(ctx, []byte("openapi: \"3.0.0\"\npaths: {}\n"))

		Convey("Then the violation is reported at info", func() {
			var verr *fault.ValidationError
			So(errors.As(err, &verr), ShouldBeTrue)
			So(errors.Is(err, fault.ErrValidation), ShouldBeTrue)
			So(verr.Path, ShouldEqual, "info")
			So(verr.Rule, ShouldNotBeEmpty)
		})
	})

	Convey("Given a document whose info lacks a title", t, func() {
		err := specchecker.Check(ctx, []byte("openapi: \"3.0.0\"\ninfo:\n  version: \"1\"\npaths: {}\n"))

		Convey("Then the path points inside info", func() {
			var verr *fault.ValidationError
			So(errors.As(err, &verr), ShouldBeTrue)
			So(verr.Path, ShouldStartWith, "info")
		})
	})

	Convey("Given text that is not YAML", t, func() {
		err := specchecker.Check(ctx, []byte("openapi: [unclosed"))
		So(errors.Is(err, fault.ErrValidation), ShouldBeTrue)
	})

	Convey("Given a YAML list instead of a mapping", t, func() {
		err := specchecker.Check(ctx, []byte("- a\n- b\n"))
		So(errors.Is(err, specchecker.ErrNotMapping), ShouldBeTrue)
	})
}

func TestCheckFile(t *testing.T) {
	ctx := context.Background()

	Convey("Given a file on disk", t, func() {
		path := filepath.Join(t.TempDir(), specchecker.DefaultFile)
		So(os.WriteFile(path, []byte(minimal), 0o600), ShouldBeNil)
		So(specchecker.CheckFile(ctx, path), ShouldBeNil)
	})

	Convey("Given a missing file", t, func() {
		err := specchecker.CheckFile(ctx, filepath.Join(t.TempDir(), "nope.yaml"))
		So(errors.Is(err, fault.ErrConfiguration), ShouldBeTrue)
		So(errors.Is(err, os.ErrNotExist), ShouldBeTrue)
	})
}
