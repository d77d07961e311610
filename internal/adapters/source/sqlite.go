package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "github.com/glebarez/go-sqlite" // registers the "sqlite" driver

	"github.com/okian/leaguelogic/internal/domain/fault"
	"github.com/okian/leaguelogic/internal/domain/model"
	"github.com/okian/leaguelogic/pkg/metrics"
)

const sqliteDriver = "sqlite"

// SQLite reads the tip log from a table in a local SQLite export. The table
// is named after the worksheet and its columns after the sheet headers.
type SQLite struct {
	path  string
	table string
}

// NewSQLite checks the settings. The database is opened on every Records call.
func NewSQLite(path, table string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fault.Configuration("source.sqlite_path", "sqlite path is required", ErrMissingDatabase)
	}
	if strings.TrimSpace(table) == "" {
		return nil, fault.Configuration("source.worksheet_name", "worksheet name is required", ErrMissingWorksheet)
	}
	return &SQLite{path: path, table: table}, nil
}

// Name implements Source.
func (s *SQLite) Name() string { return KindSQLite }

// Records implements Source.
func (s *SQLite) Records(ctx context.Context) ([]model.Row, error) {
	rows, err := s.records(ctx)
	if err != nil {
		metrics.RecordSourceError(KindSQLite, fault.Kind(err))
	}
	return rows, err
}

func (s *SQLite) records(ctx context.Context) ([]model.Row, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fault.Configuration("source.sqlite_path", "cannot open "+s.path, errors.Join(ErrMissingDatabase, err))
	}

	db, err := sql.Open(sqliteDriver, s.path+"?_pragma=query_only(1)")
	if err != nil {
		return nil, fault.Configuration("source.sqlite_path", "cannot open "+s.path, err)
	}
	defer func() { _ = db.Close() }()

	var exists int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type IN ('table','view') AND name = ?`, s.table).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", s.path, err)
	}
	if exists == 0 {
		return nil, fault.Configuration("source.worksheet_name", "no table named "+s.table, ErrMissingWorksheet)
	}

	q := fmt.Sprintf(`SELECT * FROM "%s" ORDER BY rowid`, strings.ReplaceAll(s.table, `"`, `""`))
	rs, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}
	defer func() { _ = rs.Close() }()

	cols, err := rs.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", s.table, err)
	}

	var out []model.Row
	for rs.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.table, err)
		}
		row := make(model.Row, len(cols))
		for i, c := range cols {
			if b, ok := vals[i].([]byte); ok {
				row[c] = string(b)
				continue
			}
			row[c] = vals[i]
		}
		out = append(out, row)
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.table, err)
	}
	return out, nil
}
