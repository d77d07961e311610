// Package source loads the raw tip log as header-keyed rows. Implementations
// read fresh on every call and never cache or write back.
package source

import (
	"context"

	"google.golang.org/api/option"

	"github.com/okian/leaguelogic/internal/domain/fault"
	"github.com/okian/leaguelogic/internal/domain/model"
)

// Source kinds accepted by Open.
const (
	KindSheets = "sheets"
	KindSQLite = "sqlite"
	KindDemo   = "demo"
)

// Source yields the tip log in spreadsheet row order.
type Source interface {
	Records(ctx context.Context) ([]model.Row, error)
	Name() string
}

// Settings select and configure a Source.
type Settings struct {
	Kind              string
	DocumentReference string
	WorksheetName     string
	CredentialsSource string
	SQLitePath        string

	// ClientOptions are appended to the Sheets client options.
	ClientOptions []option.ClientOption
}

// Open builds the Source described by s. It only checks the settings; no
// remote call is made until Records.
func Open(s Settings) (Source, error) {
	switch s.Kind {
	case KindSheets, "":
		return NewSheets(s.DocumentReference, s.WorksheetName, s.CredentialsSource, s.ClientOptions...)
	case KindSQLite:
		return NewSQLite(s.SQLitePath, s.WorksheetName)
	case KindDemo:
		return NewDemo(), nil
	default:
		return nil, fault.Configuration("source.kind", "unknown source kind "+s.Kind, ErrUnknownKind)
	}
}
