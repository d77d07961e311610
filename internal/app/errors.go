package service

import "errors"

// ErrNoSource is returned when the service has no tip log source.
var ErrNoSource = errors.New("no tip log source configured")
