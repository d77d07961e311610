package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/okian/leaguelogic/internal/domain/fault"
	"github.com/okian/leaguelogic/internal/domain/model"
	"github.com/okian/leaguelogic/pkg/logger"
	"github.com/okian/leaguelogic/pkg/metrics"
)

var (
	documentURL = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
	documentID  = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)
)

// Sheets reads one worksheet of a Google Sheets document.
type Sheets struct {
	documentID  string
	worksheet   string
	credentials string
	clientOpts  []option.ClientOption
}

// NewSheets validates the reference and worksheet name. The credentials file
// is checked on every Records call, since each call authenticates afresh.
func NewSheets(documentReference, worksheet, credentials string, clientOpts ...option.ClientOption) (*Sheets, error) {
	id, err := DocumentID(documentReference)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(worksheet) == "" {
		return nil, fault.Configuration("source.worksheet_name", "worksheet name is required", ErrMissingWorksheet)
	}
	return &Sheets{
		documentID:  id,
		worksheet:   worksheet,
		credentials: credentials,
		clientOpts:  clientOpts,
	}, nil
}

// Name implements Source.
func (s *Sheets) Name() string { return KindSheets }

// Records authenticates, opens the worksheet and converts it to rows.
func (s *Sheets) Records(ctx context.Context) ([]model.Row, error) {
	svc, err := Authenticate(ctx, s.credentials, s.clientOpts...)
	if err != nil {
		metrics.RecordSourceError(KindSheets, fault.Kind(err))
		return nil, err
	}
	table, err := OpenWorksheet(ctx, svc, s.documentID, s.worksheet)
	if err != nil {
		metrics.RecordSourceError(KindSheets, fault.Kind(err))
		return nil, err
	}
	logger.Get().Debug(ctx, "worksheet loaded",
		logger.String("worksheet", s.worksheet),
		logger.Int("rows", len(table)))
	rows, err := ToRecords(table)
	if err != nil {
		metrics.RecordSourceError(KindSheets, fault.Kind(err))
		return nil, err
	}
	return rows, nil
}

// DocumentID extracts the spreadsheet id from a document URL or accepts a
// bare id.
func DocumentID(reference string) (string, error) {
	ref := strings.TrimSpace(reference)
	if m := documentURL.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	if ref != "" && !strings.Contains(ref, "/") && documentID.MatchString(ref) {
		return ref, nil
	}
	return "", fault.Configuration("source.document_reference",
		fmt.Sprintf("cannot find a spreadsheet id in %q", reference), ErrBadReference)
}

// Authenticate builds a read-only Sheets service. credentials is a service
// account key file; it may be empty only when opts supply their own auth.
func Authenticate(ctx context.Context, credentials string, opts ...option.ClientOption) (*sheets.Service, error) {
	all := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}
	if credentials != "" {
		if _, err := os.Stat(credentials); err != nil {
			return nil, fault.Configuration("source.credentials_source",
				"cannot read credentials file "+credentials, errors.Join(ErrMissingCredentials, err))
		}
		all = append(all, option.WithCredentialsFile(credentials))
	} else if len(opts) == 0 {
		return nil, fault.Configuration("source.credentials_source", "credentials file is required", ErrMissingCredentials)
	}
	all = append(all, opts...)

	svc, err := sheets.NewService(ctx, all...)
	if err != nil {
		return nil, fault.Configuration("source.credentials_source", "cannot authenticate", err)
	}
	return svc, nil
}

// OpenWorksheet reads every populated cell of the named worksheet with
// unformatted values, so numbers arrive as numbers.
func OpenWorksheet(ctx context.Context, svc *sheets.Service, id, worksheet string) ([][]any, error) {
	resp, err := svc.Spreadsheets.Values.Get(id, quoteSheet(worksheet)).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify(err, id, worksheet)
	}
	return resp.Values, nil
}

// ToRecords treats the first row as the header and maps every later row onto
// it. Short rows are padded with blanks; cells past the header are dropped.
// A header name that appears twice is a data shape error.
func ToRecords(table [][]any) ([]model.Row, error) {
	if len(table) == 0 {
		return nil, nil
	}
	header := make([]string, len(table[0]))
	seen := make(map[string]struct{}, len(table[0]))
	for i, h := range table[0] {
		name := strings.TrimSpace(fmt.Sprint(h))
		if name != "" {
			if _, dup := seen[name]; dup {
				return nil, fault.DataShape(name, "duplicate column")
			}
			seen[name] = struct{}{}
		}
		header[i] = name
	}
	if len(table) < 2 {
		return nil, nil
	}

	rows := make([]model.Row, 0, len(table)-1)
	for _, cells := range table[1:] {
		row := make(model.Row, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(cells) {
				row[name] = cells[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// classify maps lookup failures to configuration errors. Anything else is an
// upstream failure and is returned wrapped.
func classify(err error, id, worksheet string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return fault.Configuration("source.document_reference", "spreadsheet "+id+" not found", err)
		case http.StatusForbidden:
			return fault.Configuration("source.credentials_source", "access to spreadsheet "+id+" denied", err)
		case http.StatusBadRequest:
			return fault.Configuration("source.worksheet_name", "cannot open worksheet "+worksheet, err)
		}
	}
	return fmt.Errorf("read worksheet %s: %w", worksheet, err)
}
