package source

import "errors"

// Sentinel kinds for tip log sources.
var (
	ErrUnknownKind        = errors.New("unknown source kind")
	ErrMissingCredentials = errors.New("credentials not found")
	ErrBadReference       = errors.New("unrecognised spreadsheet reference")
	ErrMissingWorksheet   = errors.New("worksheet name is required")
	ErrMissingDatabase    = errors.New("sqlite database not found")
)
