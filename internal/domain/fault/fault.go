// Package fault defines the three error kinds surfaced to dashboard users
// and CLI callers: configuration, data shape and document validation.
//
// Each kind is a struct carrying context plus a sentinel it matches with
// errors.Is, so callers can branch on the kind without type assertions.
package fault

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrDataShape     = errors.New("data shape error")
	ErrValidation    = errors.New("validation error")
)

// ConfigurationError reports bad credentials, document references, worksheet
// names or config options. None of these heal on retry.
type ConfigurationError struct {
	Option string // offending option, e.g. "source.worksheet_name"
	Reason string
	Err    error
}

// Configuration builds a ConfigurationError.
func Configuration(option, reason string, err error) *ConfigurationError {
	return &ConfigurationError{Option: option, Reason: reason, Err: err}
}

func (e *ConfigurationError) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration error")
	if e.Option != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Option)
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// DataShapeError reports a tip log or fixture list that cannot be turned into
// typed records. Row is the 1-based data row (0 when the problem is not row
// specific).
type DataShapeError struct {
	Row    int
	Column string
	Value  any
	Reason string
}

// DataShape builds a DataShapeError that is not tied to a row.
func DataShape(column, reason string) *DataShapeError {
	return &DataShapeError{Column: column, Reason: reason}
}

func (e *DataShapeError) Error() string {
	var sb strings.Builder
	sb.WriteString("data shape error")
	if e.Row > 0 {
		fmt.Fprintf(&sb, ": row %d", e.Row)
	}
	if e.Column != "" {
		fmt.Fprintf(&sb, ": column %q", e.Column)
	}
	if e.Value != nil {
		fmt.Fprintf(&sb, ": value %q", fmt.Sprint(e.Value))
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	return sb.String()
}

func (e *DataShapeError) Is(target error) bool { return target == ErrDataShape }

// ValidationError reports the first schema violation in an OpenAPI document.
// Path is a dotted location such as "info" or "paths./pets.get"; it is empty
// when the violation concerns the whole document.
type ValidationError struct {
	Path string
	Rule string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return "validation error: " + e.Rule
	}
	return fmt.Sprintf("validation error at %s: %s", e.Path, e.Rule)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Kind labels returned by Kind.
const (
	KindOK            = "ok"
	KindConfiguration = "configuration_error"
	KindDataShape     = "data_shape_error"
	KindValidation    = "validation_error"
	KindUpstream      = "upstream_error"
)

// Kind names the error kind of err for metrics and API payloads.
func Kind(err error) string {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrDataShape):
		return KindDataShape
	case errors.Is(err, ErrValidation):
		return KindValidation
	default:
		return KindUpstream
	}
}
