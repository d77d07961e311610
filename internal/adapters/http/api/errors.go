package api

import (
	"errors"
	"net/http"

	"github.com/okian/leaguelogic/internal/domain/fault"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
)

// opError tags an error with the handler operation that produced it.
type opError struct {
	Op  string
	Err error
}

func (e *opError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *opError) Unwrap() error { return e.Err }

// NewKind reports a sentinel kind from operation op.
func NewKind(op string, kind error) error {
	return &opError{Op: op, Err: kind}
}

// Wrap tags err with operation op. A nil err stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &opError{Op: op, Err: err}
}

// statusFor maps a dashboard pass failure to an HTTP status and error code:
// configuration 500, data shape 422, anything else 502.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, fault.ErrConfiguration):
		return http.StatusInternalServerError, fault.KindConfiguration
	case errors.Is(err, fault.ErrDataShape):
		return http.StatusUnprocessableEntity, fault.KindDataShape
	default:
		return http.StatusBadGateway, fault.KindUpstream
	}
}

// headingFor is the human title of an error page.
func headingFor(err error) string {
	switch {
	case errors.Is(err, fault.ErrConfiguration):
		return "The dashboard is misconfigured"
	case errors.Is(err, fault.ErrDataShape):
		return "The prediction log could not be read"
	default:
		return "The spreadsheet service did not respond"
	}
}
