package config

import (
	"errors"

	"github.com/okian/leaguelogic/internal/domain/fault"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

func invalid(option, reason string, err error) error {
	if err == nil {
		err = ErrInvalidConfig
	} else {
		err = errors.Join(ErrInvalidConfig, err)
	}
	return fault.Configuration(option, reason, err)
}

func loadFailed(option, reason string, err error) error {
	return fault.Configuration(option, reason, errors.Join(ErrLoadConfig, err))
}
