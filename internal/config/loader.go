package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/leaguelogic/internal/adapters/source"
	"github.com/okian/leaguelogic/pkg/logger"
)

// Environment variables that steer loading itself.
const (
	EnvPrefix  = "LEAGUELOGIC_"
	EnvConfig  = EnvPrefix + "CONFIG"
	EnvEnvFile = EnvPrefix + "ENV_FILE"

	defaultEnvFile = ".env"
	nestDelim      = "__"
)

// Load builds a Config by layering defaults, .env, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. .env file (LEAGUELOGIC_ENV_FILE, default .env) exported into the environment
//  3. file (YAML) if LEAGUELOGIC_CONFIG is set
//  4. env (prefix LEAGUELOGIC_, "__" separates sections)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if path := os.Getenv(EnvConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, loadFailed("config", "cannot load "+path, err)
		}
	}

	// LEAGUELOGIC_SOURCE__WORKSHEET_NAME -> source.worksheet_name
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, nestDelim, ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, loadFailed("env", "cannot read environment", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, loadFailed("config", "cannot decode configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Get().Debug(ctx, "configuration loaded",
		logger.String("addr", cfg.Addr),
		logger.String("source", cfg.Source.Kind))
	return &cfg, nil
}

// loadEnvFile exports a .env file without overriding variables already set.
// A missing default file is fine; a missing explicit one is not.
func loadEnvFile() error {
	path, explicit := os.LookupEnv(EnvEnvFile)
	if !explicit || path == "" {
		path = defaultEnvFile
	}
	err := godotenv.Load(path)
	switch {
	case err == nil:
		return nil
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return loadFailed("env_file", "cannot load "+path, err)
	}
}

// Validate checks option values and their combinations.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return invalid("addr", "addr must not be empty", nil)
	case !oneOf(c.LogLevel, "debug", "info", "warn", "warning", "error"):
		return invalid("log_level", "unknown log level "+c.LogLevel, nil)
	case !oneOf(c.LogFormat, logger.FormatText, logger.FormatJSON):
		return invalid("log_format", "unknown log format "+c.LogFormat, nil)
	case c.RenderTimeoutMS <= 0:
		return invalid("render_timeout_ms", "render timeout must be positive", nil)
	}

	switch c.Source.Kind {
	case source.KindSheets:
		if c.Source.DocumentReference == "" {
			return invalid("source.document_reference", "document reference is required", nil)
		}
		if c.Source.CredentialsSource == "" {
			return invalid("source.credentials_source", "credentials file is required", nil)
		}
	case source.KindSQLite:
		if c.Source.SQLitePath == "" {
			return invalid("source.sqlite_path", "sqlite path is required", nil)
		}
	case source.KindDemo:
	default:
		return invalid("source.kind", "unknown source kind "+c.Source.Kind, nil)
	}
	if c.Source.Kind != source.KindDemo && strings.TrimSpace(c.Source.WorksheetName) == "" {
		return invalid("source.worksheet_name", "worksheet name is required", nil)
	}

	if err := c.validateColumns(); err != nil {
		return err
	}

	f := c.Fixtures
	switch {
	case f.BaseMatchMinutes <= 0:
		return invalid("fixtures.base_match_minutes", "match length must be positive", nil)
	case f.HalftimeMinutes < 0:
		return invalid("fixtures.halftime_minutes", "halftime must not be negative", nil)
	case f.PaddingMinutes < 0:
		return invalid("fixtures.padding_minutes", "padding must not be negative", nil)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateColumns() error {
	seen := make(map[string]string, 3)
	for _, col := range []struct{ option, name string }{
		{"columns.outcome", c.Columns.Outcome},
		{"columns.confidence", c.Columns.Confidence},
		{"columns.roi", c.Columns.ROI},
	} {
		if strings.TrimSpace(col.name) == "" {
			return invalid(col.option, "column name must not be empty", nil)
		}
		if other, dup := seen[col.name]; dup {
			return invalid(col.option, "column name duplicates "+other, nil)
		}
		seen[col.name] = col.option
	}
	return nil
}

func oneOf(v string, allowed ...string) bool {
	v = strings.ToLower(v)
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
