// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Nested sections map to dotted koanf keys, e.g. source.worksheet_name.
// - Validation failures are *fault.ConfigurationError naming the option.
package config

import (
	"context"
	"time"

	"github.com/okian/leaguelogic/internal/adapters/source"
	"github.com/okian/leaguelogic/internal/domain/fixture"
	"github.com/okian/leaguelogic/internal/domain/model"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// RenderTimeoutMS bounds one dashboard render, fetch included.
	RenderTimeoutMS int `koanf:"render_timeout_ms"`

	Source    Source    `koanf:"source"`
	Columns   Columns   `koanf:"columns"`
	Dashboard Dashboard `koanf:"dashboard"`
	Fixtures  Fixtures  `koanf:"fixtures"`
}

// Source selects where the tip log is read from.
type Source struct {
	// Kind is sheets, sqlite or demo.
	Kind string `koanf:"kind"`

	// DocumentReference is a Sheets URL or bare document id.
	DocumentReference string `koanf:"document_reference"`

	// WorksheetName is the worksheet (or SQLite table) holding the log.
	WorksheetName string `koanf:"worksheet_name"`

	// CredentialsSource is a service account key file.
	CredentialsSource string `koanf:"credentials_source"`

	SQLitePath string `koanf:"sqlite_path"`
}

// Columns names the required headers of the tip log.
type Columns struct {
	Outcome    string `koanf:"outcome"`
	Confidence string `koanf:"confidence"`
	ROI        string `koanf:"roi"`
}

// Dashboard holds page copy.
type Dashboard struct {
	PageTitle string `koanf:"page_title"`
	Title     string `koanf:"title"`
	Tagline   string `koanf:"tagline"`
}

// Fixtures configures the fixtures page.
type Fixtures struct {
	// File is a YAML fixture list; empty uses the built-in sample.
	File     string `koanf:"file"`
	Timezone string `koanf:"timezone"`

	BaseMatchMinutes int `koanf:"base_match_minutes"`
	HalftimeMinutes  int `koanf:"halftime_minutes"`
	PaddingMinutes   int `koanf:"padding_minutes"`
}

// New creates a Config holding defaults. Context is accepted first to
// satisfy the project-wide convention.
func New(_ context.Context) *Config {
	cols := model.DefaultColumns()
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":9080",
		RenderTimeoutMS: 15_000,
		Source: Source{
			Kind:              source.KindSheets,
			DocumentReference: "https://docs.google.com/spreadsheets/d/1YDkRSzh0pWVn7IYInXHdiGhOnvo0zXNgXYKxp_Ep0Ac",
			WorksheetName:     "Charts Helper",
			CredentialsSource: "secrets.json",
			SQLitePath:        "leaguelogic.db",
		},
		Columns: Columns{
			Outcome:    cols.Outcome,
			Confidence: cols.Confidence,
			ROI:        cols.ROI,
		},
		Dashboard: Dashboard{
			PageTitle: "LeagueLogic V2.1",
			Title:     "LEAGUELOGIC V2.1 — INVESTOR DASHBOARD",
			Tagline:   "🔥 Powered by AI — Backed by Performance",
		},
		Fixtures: Fixtures{
			Timezone:         fixture.DefaultTimezone,
			BaseMatchMinutes: fixture.DefaultBaseMatchMinutes,
			HalftimeMinutes:  fixture.DefaultHalftimeMinutes,
			PaddingMinutes:   fixture.DefaultPaddingMinutes,
		},
	}
}

// RenderTimeout returns RenderTimeoutMS as a duration.
func (c *Config) RenderTimeout() time.Duration {
	return time.Duration(c.RenderTimeoutMS) * time.Millisecond
}

// SourceSettings maps the source section onto source.Settings.
func (c *Config) SourceSettings() source.Settings {
	return source.Settings{
		Kind:              c.Source.Kind,
		DocumentReference: c.Source.DocumentReference,
		WorksheetName:     c.Source.WorksheetName,
		CredentialsSource: c.Source.CredentialsSource,
		SQLitePath:        c.Source.SQLitePath,
	}
}

// ColumnNames maps the columns section onto model.Columns.
func (c *Config) ColumnNames() model.Columns {
	return model.Columns{
		Outcome:    c.Columns.Outcome,
		Confidence: c.Columns.Confidence,
		ROI:        c.Columns.ROI,
	}
}

// Timing maps the fixtures section onto the match-length model.
func (c *Config) Timing() fixture.Timing {
	return fixture.Timing{
		BaseMatch: time.Duration(c.Fixtures.BaseMatchMinutes) * time.Minute,
		Halftime:  time.Duration(c.Fixtures.HalftimeMinutes) * time.Minute,
		Padding:   time.Duration(c.Fixtures.PaddingMinutes) * time.Minute,
	}
}

// Location loads the fixtures display zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Fixtures.Timezone)
	if err != nil {
		return nil, invalid("fixtures.timezone", "unknown time zone "+c.Fixtures.Timezone, err)
	}
	return loc, nil
}
